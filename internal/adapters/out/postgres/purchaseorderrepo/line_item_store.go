package purchaseorderrepo

import (
	"context"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/purchaseorder"
	"fleetops/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLineItemStore implements LineItemStore using GORM. Line items are
// written row by row so a receipt touches exactly one item row plus the
// order row, never the whole item set.
type GormLineItemStore struct {
	db *gorm.DB
}

// NewGormLineItemStore creates a new GORM line-item store.
func NewGormLineItemStore(db *gorm.DB) *GormLineItemStore {
	return &GormLineItemStore{db: db}
}

// Upsert inserts or updates a line item by primary key. Repeated calls
// with an identical item are idempotent.
func (s *GormLineItemStore) Upsert(ctx context.Context, item *purchaseorder.LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := lineItemFromDomain(item)

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// Delete removes a line item by id. Returns an ObjectNotFoundError when no
// such row exists.
func (s *GormLineItemStore) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := s.db.WithContext(ctx).Delete(&LineItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("lineItem", id.String())
	}

	return nil
}

// ListByOrder retrieves the line items of one purchase order, sorted by id
// for consistent output.
func (s *GormLineItemStore) ListByOrder(
	ctx context.Context,
	purchaseOrderID kernel.UUID,
) ([]*purchaseorder.LineItem, error) {
	if err := purchaseOrderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LineItemDTO
	if err := s.db.WithContext(ctx).
		Where("purchase_order_id = ?", purchaseOrderID.Bytes()).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*purchaseorder.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := lineItemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
