package purchaseorderrepo

import (
	"context"
	"errors"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/purchaseorder"
	"fleetops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPurchaseOrderRepository implements PurchaseOrderRepository using GORM.
type GormPurchaseOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPurchaseOrderRepository creates a new GORM purchase order repository.
func NewGormPurchaseOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new purchase order to the database, including any line items
// the aggregate already carries.
func (r *GormPurchaseOrderRepository) Add(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the order row of an existing purchase order. The write is
// guarded by the version loaded with the aggregate: when a concurrent
// writer has bumped the version first, zero rows match and the update
// surfaces a ConcurrencyConflictError without touching the database. Line
// items are persisted separately through the line-item store.
func (r *GormPurchaseOrderRepository) Update(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&PurchaseOrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"vendor_ref":    dto.VendorRef,
			"warehouse_ref": dto.WarehouseRef,
			"status":        dto.Status,
			"tax_mode":      dto.TaxMode,
			"tax1_rate":     dto.Tax1Rate,
			"tax2_rate":     dto.Tax2Rate,
			"freight":       dto.Freight,
			"version":       dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("purchaseOrder", aggregate.ID().String())
	}

	aggregate.BumpVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a purchase order by ID, with its line items.
func (r *GormPurchaseOrderRepository) Get(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PurchaseOrderDTO
	if err := r.db.WithContext(ctx).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		}).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("purchaseOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOpen retrieves all purchase orders that have not reached the
// terminal Closed status.
//
// Example:
//
//	openOrders, err := repo.GetAllOpen(ctx)
//	if err != nil {
//		return fmt.Errorf("failed to get open orders: %w", err)
//	}
//	for _, order := range openOrders {
//		fmt.Printf("Open order: %s (%s)\n", order.ID(), order.Status())
//	}
func (r *GormPurchaseOrderRepository) GetAllOpen(ctx context.Context) ([]*purchaseorder.PurchaseOrder, error) {
	var dtos []PurchaseOrderDTO
	if err := r.db.WithContext(ctx).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		}).
		Where("status != ?", int(purchaseorder.Closed)).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*purchaseorder.PurchaseOrder, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
