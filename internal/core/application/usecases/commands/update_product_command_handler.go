package commands

import (
	"context"

	"nannyadmin/internal/core/domain/model/product"
)

// UpdateProductCommandHandler handles the business logic for product updates.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product update operations.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command and returns the updated product.
// Returns ObjectNotFoundError if the product does not exist.
func (h *UpdateProductCommandHandler) Handle(
	ctx context.Context, cmd UpdateProductCommand,
) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	existing, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err = existing.Update(cmd.Name(), cmd.Price()); err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, existing); err != nil {
		return nil, wrapLostUpdate("update product", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
