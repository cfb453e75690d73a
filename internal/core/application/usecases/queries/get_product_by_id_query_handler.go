package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nannyadmin/internal/core/domain/model/kernel"
	"nannyadmin/internal/pkg/errs"
)

// GetProductByIDQueryHandler reads a single product from the database.
type GetProductByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetProductByIDQueryHandler creates a handler for single-product queries.
func NewGetProductByIDQueryHandler(db *gorm.DB) GetProductByIDQueryHandler {
	return GetProductByIDQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError if no product with
// the given identifier exists.
func (h GetProductByIDQueryHandler) Handle(
	ctx context.Context,
	query GetProductByIDQuery,
) (ProductResponse, error) {
	var empty ProductResponse
	if err := query.Validate(); err != nil {
		return empty, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price
		FROM products
		WHERE id = ?
	`, query.ProductID().Bytes()).Row()

	var resp ProductResponse
	var id uuid.UUID
	if err := row.Scan(&id, &resp.Name, &resp.Price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return empty, errs.NewObjectNotFoundError("productId", query.ProductID().String())
		}
		return empty, err
	}

	productID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return empty, err
	}
	resp.ID = productID

	return resp, nil
}
