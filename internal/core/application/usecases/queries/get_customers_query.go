package queries

import (
	"errors"

	"nannyadmin/internal/core/domain/model/kernel"
	"nannyadmin/internal/pkg/guard"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery retrieves one page of registered customers.
//
// Example:
//
//	query, err := NewGetCustomersQuery(1, 20)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetCustomersQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
type GetCustomersQuery struct {
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetCustomersQuery creates a paginated customer list query.
// page is 1-based; pageSize is limited to MaxPageSize.
func NewGetCustomersQuery(page, pageSize int) (GetCustomersQuery, error) {
	if err := validatePagination(page, pageSize); err != nil {
		return GetCustomersQuery{}, err
	}

	return GetCustomersQuery{
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// Page returns the requested 1-based page number.
func (q GetCustomersQuery) Page() int {
	return q.page
}

// PageSize returns the requested page size.
func (q GetCustomersQuery) PageSize() int {
	return q.pageSize
}

// CustomerResponse represents one customer on the read side.
type CustomerResponse struct {
	ID       kernel.UUID
	Name     string
	LastName string
	Address  string
	PhotoURL *string
}
