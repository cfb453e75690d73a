package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nannyadmin/internal/core/application/usecases/commands"
	"nannyadmin/internal/pkg/errs"
)

func TestCreateCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	photo := "https://example.com/anna.jpg"
	cmd, err := commands.NewCreateCustomerCommand("Anna", "Smith", "1 Main St", &photo)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Add", mock.Anything, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCustomerCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Anna", created.Name())
	require.NoError(t, created.ID().Validate())
	uow.AssertExpectations(t)
}

func TestCreateCustomerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCustomerCommand("", "", "", nil)
	require.NoError(t, err)

	// the entity rejects the input before any transaction is opened
	factory := new(MockCustomerUoWFactory)
	h := commands.NewCreateCustomerCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, errs.ErrDomainValidation)
	factory.AssertNotCalled(t, "Create")
}
