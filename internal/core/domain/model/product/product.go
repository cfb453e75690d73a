// Package product provides the Product entity for the admin system.
// A product's price is copied into order lines at the moment those lines
// are created, so later price changes never affect existing orders.
package product

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"nannyadmin/internal/core/domain/model/kernel"
	"nannyadmin/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

// Product represents a sellable item in the catalog.
//
// Business rules:
//   - Name must be non-blank
//   - Price must be non-negative (zero is allowed)
//   - Updates are atomic: the new state is validated in full before assignment
type Product struct {
	// id uniquely identifies the product
	id kernel.UUID
	// name is the product's display name
	name string
	// price is the current unit price
	price decimal.Decimal
	// isConstructed ensures the product was created via a factory method
	isConstructed bool
}

// NewProduct creates a new Product with a fresh identity.
// Every violated field is reported in a single DomainValidationError with
// entity type "Product".
func NewProduct(name string, price decimal.Decimal) (*Product, error) {
	if err := validateProductData(name, price); err != nil {
		return nil, err
	}

	return &Product{
		id:            kernel.NewUUID(),
		name:          name,
		price:         price,
		isConstructed: true,
	}, nil
}

// RestoreProduct reconstructs a Product from persistence with its original identity.
func RestoreProduct(id kernel.UUID, name string, price decimal.Decimal) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if err := validateProductData(name, price); err != nil {
		return nil, err
	}

	return &Product{
		id:            id,
		name:          name,
		price:         price,
		isConstructed: true,
	}, nil
}

// Validate ensures the Product instance was properly constructed through a factory method.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product's current unit price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Update replaces the product's name and price at once. Either both fields
// pass validation and both are applied, or the product keeps its previous
// state and the complete set of violations is returned.
func (p *Product) Update(name string, price decimal.Decimal) error {
	if err := validateProductData(name, price); err != nil {
		return err
	}

	p.name = name
	p.price = price
	return nil
}

func validateProductData(name string, price decimal.Decimal) error {
	fieldErrors := make(map[string][]string)

	if strings.TrimSpace(name) == "" {
		fieldErrors["Name"] = []string{"Name cannot be empty or whitespace."}
	}

	if price.IsNegative() {
		fieldErrors["Price"] = []string{"Price cannot be negative."}
	}

	if len(fieldErrors) > 0 {
		return errs.NewDomainValidationError("Product", fieldErrors)
	}
	return nil
}
