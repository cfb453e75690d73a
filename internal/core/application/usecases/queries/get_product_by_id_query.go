package queries

import (
	"errors"

	"nannyadmin/internal/core/domain/model/kernel"
	"nannyadmin/internal/pkg/guard"
)

var ErrGetProductByIDQueryIsNotConstructed = errors.New(
	"GetProductByIDQuery must be created via NewGetProductByIDQuery constructor",
)

// GetProductByIDQuery retrieves a single product by identifier.
type GetProductByIDQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductByIDQuery creates a query for one product.
func NewGetProductByIDQuery(productID kernel.UUID) (GetProductByIDQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductByIDQuery{}, err
	}

	return GetProductByIDQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetProductByIDQueryIsNotConstructed)
}

// ProductID returns the requested product identifier.
func (q GetProductByIDQuery) ProductID() kernel.UUID {
	return q.productID
}
