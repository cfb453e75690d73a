package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"nannyadmin/internal/core/domain/model/kernel"
	"nannyadmin/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a request to replace a product's name and
// price. Existing order lines keep the price snapshotted at line creation.
type UpdateProductCommand struct {
	productID kernel.UUID
	name      string
	price     decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update an existing product.
// Validates the product identifier; field rules are enforced by the entity.
func NewUpdateProductCommand(productID kernel.UUID, name string, price decimal.Decimal) (UpdateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		productID: productID,
		name:      name,
		price:     price,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to update.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the new display name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Price returns the new unit price.
func (c UpdateProductCommand) Price() decimal.Decimal {
	return c.price
}
