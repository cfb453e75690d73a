package ports

import (
	"context"

	"nannyadmin/internal/core/domain/model/kernel"
	"nannyadmin/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	// Returns an error if the product no longer exists.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves a page of products ordered by name. page is 1-based.
	GetAll(ctx context.Context, page, pageSize int) ([]*product.Product, error)

	// Count returns the total number of products.
	Count(ctx context.Context) (int64, error)
}
