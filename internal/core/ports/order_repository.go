package ports

import (
	"context"

	"nannyadmin/internal/core/domain/model/kernel"
	"nannyadmin/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The aggregate is stored and loaded as one unit: an order always travels
// together with its complete line collection.
type OrderRepository interface {
	// Add persists a new order aggregate with all of its lines.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, replacing its
	// stored line collection with the aggregate's current one.
	// Returns an error if the order no longer exists.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order including all of its lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves a page of orders ordered by creation time, newest
	// first. page is 1-based.
	GetAll(ctx context.Context, page, pageSize int) ([]*order.Order, error)

	// Count returns the total number of orders.
	Count(ctx context.Context) (int64, error)
}
