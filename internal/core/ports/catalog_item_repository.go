package ports

import (
	"context"

	"fleetops/internal/core/domain/model/catalog"
	"fleetops/internal/core/domain/model/kernel"
)

// CatalogItemRepository defines the persistence contract for catalog items.
type CatalogItemRepository interface {
	// Add persists a new catalog item.
	Add(ctx context.Context, aggregate *catalog.CatalogItem) error

	// Update persists changes to an existing catalog item.
	Update(ctx context.Context, aggregate *catalog.CatalogItem) error

	// Get retrieves a catalog item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.CatalogItem, error)
}
