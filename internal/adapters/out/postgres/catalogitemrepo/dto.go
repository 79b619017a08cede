// Package catalogitemrepo provides data transfer objects and mapping
// functions for catalog item persistence.
package catalogitemrepo

import (
	"fleetops/internal/core/domain/model/catalog"
	"fleetops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogItemDTO represents the database structure for persisting catalog items.
type CatalogItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Description string          `gorm:"type:varchar(255);not null"`
	UnitCost    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

// TableName specifies the database table name for catalog item entities.
// Overrides GORM's default naming convention to use "catalog_items".
func (CatalogItemDTO) TableName() string {
	return "catalog_items"
}

// fromDomain converts a catalog item to its database representation.
func fromDomain(item *catalog.CatalogItem) CatalogItemDTO {
	return CatalogItemDTO{
		ID:          item.ID().Bytes(),
		Description: item.Description(),
		UnitCost:    item.UnitCost().Amount(),
	}
}

// toDomain converts a database DTO to a catalog item using RestoreCatalogItem.
func toDomain(dto CatalogItemDTO) (*catalog.CatalogItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	unitCost, err := kernel.NewMoney(dto.UnitCost)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreCatalogItem(id, dto.Description, unitCost)
}
