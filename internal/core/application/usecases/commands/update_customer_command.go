package commands

import (
	"errors"

	"nannyadmin/internal/core/domain/model/kernel"
	"nannyadmin/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents a request to replace a customer's fields.
// The update is atomic: the entity validates the complete new state before
// applying any of it.
type UpdateCustomerCommand struct {
	customerID kernel.UUID
	name       string
	lastName   string
	address    string
	photoURL   *string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to update an existing customer.
// Validates the customer identifier; field rules are enforced by the entity.
func NewUpdateCustomerCommand(
	customerID kernel.UUID, name, lastName, address string, photoURL *string,
) (UpdateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return UpdateCustomerCommand{
		customerID: customerID,
		name:       name,
		lastName:   lastName,
		address:    address,
		photoURL:   photoURL,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer to update.
func (c UpdateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the new first name.
func (c UpdateCustomerCommand) Name() string {
	return c.name
}

// LastName returns the new last name.
func (c UpdateCustomerCommand) LastName() string {
	return c.lastName
}

// Address returns the new postal address.
func (c UpdateCustomerCommand) Address() string {
	return c.address
}

// PhotoURL returns the new optional photo URL.
func (c UpdateCustomerCommand) PhotoURL() *string {
	return c.photoURL
}
