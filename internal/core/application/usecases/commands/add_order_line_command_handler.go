package commands

import (
	"context"

	"nannyadmin/internal/core/domain/model/order"
)

// AddOrderLineCommandHandler handles adding product lines to orders.
type AddOrderLineCommandHandler struct {
	uowFactory OrderProductUoWFactory
}

// NewAddOrderLineCommandHandler creates a handler for line addition.
// Requires an OrderProductUoWFactory because the product's current price is
// read in the same transaction that writes the order.
func NewAddOrderLineCommandHandler(uowFactory OrderProductUoWFactory) AddOrderLineCommandHandler {
	return AddOrderLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the line addition and returns the updated order.
//
// Returns ObjectNotFoundError if the order or product does not exist,
// InvalidEntityStateError if the order is no longer modifiable, and
// DuplicateEntityError if the order already has a line for the product.
// A concurrent deletion of the order between load and update surfaces as
// OperationFailedError.
func (h *AddOrderLineCommandHandler) Handle(ctx context.Context, cmd AddOrderLineCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	orderedProduct, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	line, err := order.NewOrderLine(existing.ID(), orderedProduct.ID(), cmd.Count(), orderedProduct.Price())
	if err != nil {
		return nil, err
	}

	if err = existing.AddLine(line); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, wrapLostUpdate("update order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
