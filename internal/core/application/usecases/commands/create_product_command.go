package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"nannyadmin/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product to the catalog.
// Field rules (non-blank name, non-negative price) are enforced by the
// Product entity, which reports all violations at once.
type CreateProductCommand struct {
	name  string
	price decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a new product.
func NewCreateProductCommand(name string, price decimal.Decimal) (CreateProductCommand, error) {
	return CreateProductCommand{
		name:  name,
		price: price,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Name returns the product's display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the product's unit price.
func (c CreateProductCommand) Price() decimal.Decimal {
	return c.price
}
