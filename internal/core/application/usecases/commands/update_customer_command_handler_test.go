package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"nannyadmin/internal/core/application/usecases/commands"
	"nannyadmin/internal/pkg/errs"
)

func TestUpdateCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := newTestCustomer(t)
	cmd, err := commands.NewUpdateCustomerCommand(existing.ID(), "Maria", "Jones", "2 Oak Ave", nil)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		customerRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCustomerCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Maria", updated.Name())
	assert.Equal(t, "Jones", updated.LastName())
	uow.AssertExpectations(t)
}

func TestUpdateCustomerCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	existing := newTestCustomer(t)
	cmd, err := commands.NewUpdateCustomerCommand(existing.ID(), "Maria", "Jones", "2 Oak Ave", nil)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, existing.ID()).
			Return(nil, errs.NewObjectNotFoundError("customerId", existing.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCustomerCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestUpdateCustomerCommandHandler_Handle_InvalidState(t *testing.T) {
	ctx := t.Context()
	existing := newTestCustomer(t)
	cmd, err := commands.NewUpdateCustomerCommand(existing.ID(), "", "Jones", "2 Oak Ave", nil)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCustomerCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, errs.ErrDomainValidation)
	// the stored customer keeps its previous state
	assert.Equal(t, "Anna", existing.Name())
	uow.AssertExpectations(t)
}

func TestUpdateCustomerCommandHandler_Handle_ConcurrentDeletion(t *testing.T) {
	ctx := t.Context()
	existing := newTestCustomer(t)
	cmd, err := commands.NewUpdateCustomerCommand(existing.ID(), "Maria", "Jones", "2 Oak Ave", nil)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		customerRepo.On("Update", mock.Anything, existing).Return(gorm.ErrRecordNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCustomerCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, errs.ErrOperationFailed)
	uow.AssertExpectations(t)
}
