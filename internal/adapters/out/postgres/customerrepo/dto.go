// Package customerrepo provides data transfer objects and mapping functions for customer persistence.
// This package implements the repository pattern for the customer entity, handling
// the conversion between domain entities and database representations.
package customerrepo

import (
	"github.com/google/uuid"

	"nannyadmin/internal/core/domain/model/customer"
	"nannyadmin/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	LastName string
	Address  string
	PhotoURL *string
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain entity to its database representation.
func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:       c.ID().Bytes(),
		Name:     c.Name(),
		LastName: c.LastName(),
		Address:  c.Address(),
		PhotoURL: c.PhotoURL(),
	}
}

// toDomain converts a database DTO to a customer domain entity using RestoreCustomer.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.LastName, dto.Address, dto.PhotoURL)
}
