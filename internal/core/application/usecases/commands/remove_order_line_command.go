package commands

import (
	"errors"

	"nannyadmin/internal/core/domain/model/kernel"
	"nannyadmin/internal/pkg/guard"
)

var ErrRemoveOrderLineCommandIsNotConstructed = errors.New(
	"RemoveOrderLineCommand must be created via NewRemoveOrderLineCommand constructor",
)

// RemoveOrderLineCommand represents a request to remove a line from an order.
type RemoveOrderLineCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	lineID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrderLineCommand creates a command to remove a line from an order.
func NewRemoveOrderLineCommand(orderID, lineID kernel.UUID) (RemoveOrderLineCommand, error) {
	lineCommand := RemoveOrderLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		lineCommand.setOrderID(orderID),
		lineCommand.setLineID(lineID),
	); err != nil {
		return RemoveOrderLineCommand{}, err
	}

	return lineCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderLineCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to modify.
func (c RemoveOrderLineCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineID returns the identifier of the line to remove.
func (c RemoveOrderLineCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c *RemoveOrderLineCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveOrderLineCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}
