package ports

import (
	"context"

	"nannyadmin/internal/core/domain/model/customer"
	"nannyadmin/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	// Add persists a new customer.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer.
	// Returns an error if the customer no longer exists.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetAll retrieves a page of customers ordered by last name, then name.
	// page is 1-based.
	GetAll(ctx context.Context, page, pageSize int) ([]*customer.Customer, error)

	// Count returns the total number of customers.
	Count(ctx context.Context) (int64, error)
}
