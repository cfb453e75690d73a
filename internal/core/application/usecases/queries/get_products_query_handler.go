package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nannyadmin/internal/core/domain/model/kernel"
)

// GetProductsQueryHandler reads pages of catalog products from the database.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for product list queries.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the query and returns one page of products ordered by
// name, together with the total product count.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) (PaginatedResponse[ProductResponse], error) {
	var empty PaginatedResponse[ProductResponse]
	if err := query.Validate(); err != nil {
		return empty, err
	}

	var total int64
	if err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM products`).Scan(&total).Error; err != nil {
		return empty, err
	}

	products := make([]ProductResponse, 0, query.PageSize())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price
		FROM products
		ORDER BY name, id
		LIMIT ? OFFSET ?
	`, query.PageSize(), offset(query.Page(), query.PageSize())).Rows()
	if err != nil {
		return empty, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ProductResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Name, &resp.Price); err != nil {
			return empty, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return empty, idErr
		}
		resp.ID = productID
		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return empty, err
	}

	return newPaginatedResponse(products, query.Page(), query.PageSize(), total), nil
}
