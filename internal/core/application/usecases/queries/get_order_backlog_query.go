package queries

import (
	"errors"

	"nannyadmin/internal/pkg/guard"
)

var ErrGetOrderBacklogQueryIsNotConstructed = errors.New(
	"GetOrderBacklogQuery must be created via NewGetOrderBacklogQuery constructor",
)

// GetOrderBacklogQuery retrieves the number of orders per status.
// Used by the backlog report job.
type GetOrderBacklogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderBacklogQuery creates a backlog count query.
func NewGetOrderBacklogQuery() GetOrderBacklogQuery {
	return GetOrderBacklogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBacklogQueryIsNotConstructed)
}

// OrderBacklogResponse holds the order count for one status.
type OrderBacklogResponse struct {
	Status string
	Count  int64
}
