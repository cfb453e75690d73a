// Package customer provides the Customer entity for the admin system.
// Customer is an independent aggregate referenced by orders through its
// identity only; orders never embed customer state.
package customer

import (
	"errors"
	"net/url"
	"strings"

	"nannyadmin/internal/core/domain/model/kernel"
	"nannyadmin/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")

// Customer represents a customer of the shop.
//
// Business rules:
//   - Name, last name, and address must all be non-blank
//   - The photo URL is optional, but when present it must be a well-formed absolute URL
//   - Updates are atomic: all fields are validated together and either the
//     complete new state is applied or the entity is left untouched
//
// Validation collects every violated field into one DomainValidationError so
// callers see the complete error set in a single round trip.
type Customer struct {
	// id uniquely identifies the customer
	id kernel.UUID
	// name is the customer's first name
	name string
	// lastName is the customer's last name
	lastName string
	// address is the customer's postal address
	address string
	// photoURL optionally points to the customer's photo
	photoURL *string
	// isConstructed ensures the customer was created via a factory method
	isConstructed bool
}

// NewCustomer creates a new Customer with a fresh identity.
// All fields are validated together; every violation is reported in a single
// DomainValidationError with entity type "Customer".
func NewCustomer(name, lastName, address string, photoURL *string) (*Customer, error) {
	if err := validateCustomerData(name, lastName, address, photoURL); err != nil {
		return nil, err
	}

	return &Customer{
		id:            kernel.NewUUID(),
		name:          name,
		lastName:      lastName,
		address:       address,
		photoURL:      photoURL,
		isConstructed: true,
	}, nil
}

// RestoreCustomer reconstructs a Customer from persistence with its original identity.
func RestoreCustomer(id kernel.UUID, name, lastName, address string, photoURL *string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if err := validateCustomerData(name, lastName, address, photoURL); err != nil {
		return nil, err
	}

	return &Customer{
		id:            id,
		name:          name,
		lastName:      lastName,
		address:       address,
		photoURL:      photoURL,
		isConstructed: true,
	}, nil
}

// Validate ensures the Customer instance was properly constructed through a factory method.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's first name.
func (c *Customer) Name() string {
	return c.name
}

// LastName returns the customer's last name.
func (c *Customer) LastName() string {
	return c.lastName
}

// Address returns the customer's postal address.
func (c *Customer) Address() string {
	return c.address
}

// PhotoURL returns the customer's photo URL, or nil if none was set.
func (c *Customer) PhotoURL() *string {
	return c.photoURL
}

// Update replaces all mutable fields at once. The new state is validated in
// full before anything is assigned: either every field passes and all are
// applied, or the customer keeps its previous state and the complete set of
// violations is returned.
func (c *Customer) Update(name, lastName, address string, photoURL *string) error {
	if err := validateCustomerData(name, lastName, address, photoURL); err != nil {
		return err
	}

	c.name = name
	c.lastName = lastName
	c.address = address
	c.photoURL = photoURL
	return nil
}

func validateCustomerData(name, lastName, address string, photoURL *string) error {
	fieldErrors := make(map[string][]string)

	if strings.TrimSpace(name) == "" {
		fieldErrors["Name"] = []string{"Name cannot be empty or whitespace."}
	}

	if strings.TrimSpace(lastName) == "" {
		fieldErrors["LastName"] = []string{"LastName cannot be empty or whitespace."}
	}

	if strings.TrimSpace(address) == "" {
		fieldErrors["Address"] = []string{"Address cannot be empty or whitespace."}
	}

	if photoURL != nil && *photoURL != "" && !isAbsoluteURL(*photoURL) {
		fieldErrors["PhotoUrl"] = []string{"PhotoUrl must be a well-formed absolute URL."}
	}

	if len(fieldErrors) > 0 {
		return errs.NewDomainValidationError("Customer", fieldErrors)
	}
	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs() && u.Host != ""
}
