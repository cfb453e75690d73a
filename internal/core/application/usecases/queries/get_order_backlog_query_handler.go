package queries

import (
	"context"

	"gorm.io/gorm"

	"nannyadmin/internal/core/domain/model/order"
)

// GetOrderBacklogQueryHandler counts orders grouped by status directly
// against the database.
type GetOrderBacklogQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderBacklogQueryHandler creates a handler bound to the given database.
func NewGetOrderBacklogQueryHandler(db *gorm.DB) GetOrderBacklogQueryHandler {
	return GetOrderBacklogQueryHandler{db: db}
}

// Handle executes the query and returns one entry per status present in the
// orders table, ordered by status.
func (h GetOrderBacklogQueryHandler) Handle(
	ctx context.Context,
	query GetOrderBacklogQuery,
) ([]OrderBacklogResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	backlog := make([]OrderBacklogResponse, 0)
	for rows.Next() {
		var status int
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		backlog = append(backlog, OrderBacklogResponse{
			Status: order.Status(status).String(),
			Count:  count,
		})
	}

	return backlog, rows.Err()
}
