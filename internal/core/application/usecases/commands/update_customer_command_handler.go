package commands

import (
	"context"

	"nannyadmin/internal/core/domain/model/customer"
)

// UpdateCustomerCommandHandler handles the business logic for customer updates.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer update operations.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command and returns the updated customer.
// Returns ObjectNotFoundError if the customer does not exist and a
// DomainValidationError if the new state violates field rules; in the latter
// case the stored customer is left unchanged.
func (h *UpdateCustomerCommandHandler) Handle(
	ctx context.Context, cmd UpdateCustomerCommand,
) (*customer.Customer, error) {
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

	customerRepo := uow.CustomerRepository()
	existing, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	if err = existing.Update(cmd.Name(), cmd.LastName(), cmd.Address(), cmd.PhotoURL()); err != nil {
		return nil, err
	}

	if err = customerRepo.Update(ctx, existing); err != nil {
		return nil, wrapLostUpdate("update customer", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
