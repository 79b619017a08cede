package commands

import (
	"context"

	"fleetops/internal/core/domain/model/catalog"
)

// CreateCatalogItemCommandHandler registers new catalog items.
type CreateCatalogItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateCatalogItemCommandHandler creates a handler for catalog item
// registration.
func NewCreateCatalogItemCommandHandler(uowFactory CatalogUoWFactory) CreateCatalogItemCommandHandler {
	return CreateCatalogItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the catalog item and persists it.
func (h CreateCatalogItemCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCatalogItemCommand,
) (*catalog.CatalogItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := catalog.NewCatalogItem(cmd.CatalogItemID(), cmd.Description(), cmd.UnitCost())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CatalogItemRepository().Add(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
