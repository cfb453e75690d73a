package commands

import (
	"errors"

	"nannyadmin/internal/core/domain/model/kernel"
	"nannyadmin/internal/pkg/guard"
)

var ErrAddOrderLineCommandIsNotConstructed = errors.New(
	"AddOrderLineCommand must be created via NewAddOrderLineCommand constructor",
)

// AddOrderLineCommand represents a request to add a product line to an
// existing order. The line's unit price is snapshotted from the catalog at
// handling time.
type AddOrderLineCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID kernel.UUID
	count     int

	guard guard.ConstructorGuard
}

// NewAddOrderLineCommand creates a command to add a line to an order.
// Validates the identifiers; the count rule is enforced by the domain.
func NewAddOrderLineCommand(orderID, productID kernel.UUID, count int) (AddOrderLineCommand, error) {
	lineCommand := AddOrderLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		lineCommand.setOrderID(orderID),
		lineCommand.setProductID(productID),
	); err != nil {
		return AddOrderLineCommand{}, err
	}

	lineCommand.count = count
	return lineCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderLineCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to extend.
func (c AddOrderLineCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the identifier of the product to add.
func (c AddOrderLineCommand) ProductID() kernel.UUID {
	return c.productID
}

// Count returns the requested quantity.
func (c AddOrderLineCommand) Count() int {
	return c.count
}

func (c *AddOrderLineCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderLineCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
