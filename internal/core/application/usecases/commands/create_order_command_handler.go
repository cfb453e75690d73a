package commands

import (
	"context"

	"nannyadmin/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates new orders in Created status, resolving each requested line's
// product from the catalog and snapshotting its current price.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(customerID, lines)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory because creation reads customers and products while
// writing the order.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created order.
//
// Returns ObjectNotFoundError if the customer or any referenced product does
// not exist, and DuplicateEntityError if the same product appears in more
// than one requested line. The whole creation is one transaction: either the
// order with all its lines is persisted or nothing is.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	productRepo := uow.ProductRepository()
	for _, input := range cmd.Lines() {
		orderedProduct, err := productRepo.Get(ctx, input.ProductID)
		if err != nil {
			return nil, err
		}

		line, err := order.NewOrderLine(newOrder.ID(), orderedProduct.ID(), input.Count, orderedProduct.Price())
		if err != nil {
			return nil, err
		}

		if err = newOrder.AddLine(line); err != nil {
			return nil, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
