package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"nannyadmin/internal/pkg/errs"
)

// GetOrderByIDQueryHandler reads a single order with its lines from the database.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order queries.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError if no order with
// the given identifier exists.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (OrderResponse, error) {
	var empty OrderResponse
	if err := query.Validate(); err != nil {
		return empty, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	resp, err := scanOrderRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return empty, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
		}
		return empty, err
	}

	orders := []OrderResponse{resp}
	lines := GetOrdersQueryHandler{db: h.db}
	if err = lines.attachLines(ctx, orders); err != nil {
		return empty, err
	}

	return orders[0], nil
}
