package catalogitemrepo

import (
	"context"
	"errors"

	"fleetops/internal/core/domain/model/catalog"
	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogItemRepository implements CatalogItemRepository using GORM.
type GormCatalogItemRepository struct {
	db *gorm.DB
}

// NewGormCatalogItemRepository creates a new GORM catalog item repository.
func NewGormCatalogItemRepository(db *gorm.DB) *GormCatalogItemRepository {
	return &GormCatalogItemRepository{db: db}
}

// Add saves a new catalog item to the database.
func (r *GormCatalogItemRepository) Add(ctx context.Context, aggregate *catalog.CatalogItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing catalog item to the database.
func (r *GormCatalogItemRepository) Update(ctx context.Context, aggregate *catalog.CatalogItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a catalog item by ID.
func (r *GormCatalogItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.CatalogItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CatalogItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("catalogItem", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
