package commands

import (
	"errors"

	"nannyadmin/internal/core/domain/model/kernel"
	"nannyadmin/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLineInput describes one requested line of a new order: which product
// and how many. The unit price is not part of the input; it is snapshotted
// from the catalog when the line is created.
type OrderLineInput struct {
	ProductID kernel.UUID
	Count     int
}

// CreateOrderCommand represents a request to create a new order for a
// customer, optionally with an initial set of lines.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, []OrderLineInput{
//	    {ProductID: productID, Count: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	lines      []OrderLineInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the customer identifier and each line's product identifier;
// count and price rules are enforced by the domain when lines are built.
func NewCreateOrderCommand(customerID kernel.UUID, lines []OrderLineInput) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderCommand.setCustomerID(customerID); err != nil {
		return CreateOrderCommand{}, err
	}

	if err := orderCommand.setLines(lines); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer the order is for.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Lines returns the requested initial lines. May be empty; an order can be
// created without lines and filled later.
func (c CreateOrderCommand) Lines() []OrderLineInput {
	return c.lines
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLineInput) error {
	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
	}

	c.lines = lines
	return nil
}
