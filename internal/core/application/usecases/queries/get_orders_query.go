package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"nannyadmin/internal/core/domain/model/kernel"
	"nannyadmin/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves one page of orders with their complete line
// collections, newest orders first.
type GetOrdersQuery struct {
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a paginated order list query.
// page is 1-based; pageSize is limited to MaxPageSize.
func NewGetOrdersQuery(page, pageSize int) (GetOrdersQuery, error) {
	if err := validatePagination(page, pageSize); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Page returns the requested 1-based page number.
func (q GetOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the requested page size.
func (q GetOrdersQuery) PageSize() int {
	return q.pageSize
}

// OrderLineResponse represents one line of an order on the read side.
// Price is the unit price snapshotted when the line was added.
type OrderLineResponse struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	Count     int
	Price     decimal.Decimal
}

// OrderResponse represents one order with its lines on the read side.
// TotalAmount is the sum of price times count over the lines.
type OrderResponse struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	Status      string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	Lines       []OrderLineResponse
	TotalAmount decimal.Decimal
}
