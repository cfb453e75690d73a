// Package productrepo provides data transfer objects and mapping functions for product persistence.
package productrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"nannyadmin/internal/core/domain/model/kernel"
	"nannyadmin/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting catalog products.
// Price is stored as numeric to keep exact decimal arithmetic in the database.
type ProductDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Price decimal.Decimal `gorm:"type:numeric(18,2)"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain entity to its database representation.
func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:    p.ID().Bytes(),
		Name:  p.Name(),
		Price: p.Price(),
	}
}

// toDomain converts a database DTO to a product domain entity using RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Price)
}
