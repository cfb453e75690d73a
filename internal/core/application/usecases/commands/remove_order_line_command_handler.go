package commands

import (
	"context"

	"nannyadmin/internal/pkg/errs"
)

// RemoveOrderLineCommandHandler handles removing lines from orders.
type RemoveOrderLineCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveOrderLineCommandHandler creates a handler for line removal.
func NewRemoveOrderLineCommandHandler(uowFactory OrderUoWFactory) RemoveOrderLineCommandHandler {
	return RemoveOrderLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the line removal.
//
// The aggregate itself treats removing an unknown line as an idempotent
// no-op; this handler adds an existence check on top so API callers get
// ObjectNotFoundError for a line that is not on the order. Also returns
// ObjectNotFoundError if the order does not exist and
// InvalidEntityStateError if the order is no longer modifiable.
// A concurrent deletion of the order between load and update surfaces as
// OperationFailedError.
func (h *RemoveOrderLineCommandHandler) Handle(ctx context.Context, cmd RemoveOrderLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if existing.Line(cmd.LineID()) == nil {
		return errs.NewObjectNotFoundError("orderLineId", cmd.LineID())
	}

	if err = existing.RemoveLine(cmd.LineID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return wrapLostUpdate("update order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
