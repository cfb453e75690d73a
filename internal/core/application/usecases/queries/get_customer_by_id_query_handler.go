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

// GetCustomerByIDQueryHandler reads a single customer from the database.
type GetCustomerByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerByIDQueryHandler creates a handler for single-customer queries.
func NewGetCustomerByIDQueryHandler(db *gorm.DB) GetCustomerByIDQueryHandler {
	return GetCustomerByIDQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError if no customer with
// the given identifier exists.
func (h GetCustomerByIDQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerByIDQuery,
) (CustomerResponse, error) {
	var empty CustomerResponse
	if err := query.Validate(); err != nil {
		return empty, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			last_name,
			address,
			photo_url
		FROM customers
		WHERE id = ?
	`, query.CustomerID().Bytes()).Row()

	var resp CustomerResponse
	var id uuid.UUID
	if err := row.Scan(&id, &resp.Name, &resp.LastName, &resp.Address, &resp.PhotoURL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return empty, errs.NewObjectNotFoundError("customerId", query.CustomerID().String())
		}
		return empty, err
	}

	customerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return empty, err
	}
	resp.ID = customerID

	return resp, nil
}
