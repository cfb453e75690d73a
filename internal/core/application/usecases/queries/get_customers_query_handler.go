package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nannyadmin/internal/core/domain/model/kernel"
)

// GetCustomersQueryHandler reads pages of customers from the database.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersQueryHandler creates a handler for customer list queries.
// Requires a GORM database connection for query execution.
func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle executes the query and returns one page of customers ordered by
// last name, then first name, together with the total customer count.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) (PaginatedResponse[CustomerResponse], error) {
	var empty PaginatedResponse[CustomerResponse]
	if err := query.Validate(); err != nil {
		return empty, err
	}

	var total int64
	if err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM customers`).Scan(&total).Error; err != nil {
		return empty, err
	}

	customers := make([]CustomerResponse, 0, query.PageSize())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			last_name,
			address,
			photo_url
		FROM customers
		ORDER BY last_name, name, id
		LIMIT ? OFFSET ?
	`, query.PageSize(), offset(query.Page(), query.PageSize())).Rows()
	if err != nil {
		return empty, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp CustomerResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Name, &resp.LastName, &resp.Address, &resp.PhotoURL); err != nil {
			return empty, err
		}

		customerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return empty, idErr
		}
		resp.ID = customerID
		customers = append(customers, resp)
	}

	if err = rows.Err(); err != nil {
		return empty, err
	}

	return newPaginatedResponse(customers, query.Page(), query.PageSize(), total), nil
}
