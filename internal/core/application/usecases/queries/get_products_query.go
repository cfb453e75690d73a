package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"nannyadmin/internal/core/domain/model/kernel"
	"nannyadmin/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves one page of catalog products.
type GetProductsQuery struct {
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a paginated product list query.
// page is 1-based; pageSize is limited to MaxPageSize.
func NewGetProductsQuery(page, pageSize int) (GetProductsQuery, error) {
	if err := validatePagination(page, pageSize); err != nil {
		return GetProductsQuery{}, err
	}

	return GetProductsQuery{
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// Page returns the requested 1-based page number.
func (q GetProductsQuery) Page() int {
	return q.page
}

// PageSize returns the requested page size.
func (q GetProductsQuery) PageSize() int {
	return q.pageSize
}

// ProductResponse represents one catalog product on the read side.
type ProductResponse struct {
	ID    kernel.UUID
	Name  string
	Price decimal.Decimal
}
