package commands

import (
	"errors"

	"nannyadmin/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a new customer.
// Field rules (non-blank name, last name, address; absolute photo URL) are
// enforced by the Customer entity, which reports all violations at once;
// the command is a validated carrier of the raw input.
type CreateCustomerCommand struct {
	name     string
	lastName string
	address  string
	photoURL *string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a new customer.
func NewCreateCustomerCommand(name, lastName, address string, photoURL *string) (CreateCustomerCommand, error) {
	return CreateCustomerCommand{
		name:     name,
		lastName: lastName,
		address:  address,
		photoURL: photoURL,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// Name returns the customer's first name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// LastName returns the customer's last name.
func (c CreateCustomerCommand) LastName() string {
	return c.lastName
}

// Address returns the customer's postal address.
func (c CreateCustomerCommand) Address() string {
	return c.address
}

// PhotoURL returns the optional photo URL.
func (c CreateCustomerCommand) PhotoURL() *string {
	return c.photoURL
}
