package commands_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"nannyadmin/internal/core/application/usecases/commands"
	"nannyadmin/internal/pkg/errs"
)

func TestUpdateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := newTestProduct(t, decimal.NewFromInt(10))
	cmd, err := commands.NewUpdateProductCommand(existing.ID(), "Large Teddy Bear", decimal.NewFromInt(15))
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		productRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProductCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Large Teddy Bear", updated.Name())
	assert.True(t, updated.Price().Equal(decimal.NewFromInt(15)))
	uow.AssertExpectations(t)
}

func TestUpdateProductCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	existing := newTestProduct(t, decimal.NewFromInt(10))
	cmd, err := commands.NewUpdateProductCommand(existing.ID(), "Large Teddy Bear", decimal.NewFromInt(15))
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, existing.ID()).
			Return(nil, errs.NewObjectNotFoundError("productId", existing.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProductCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestUpdateProductCommandHandler_Handle_InvalidState(t *testing.T) {
	ctx := t.Context()
	existing := newTestProduct(t, decimal.NewFromInt(10))
	cmd, err := commands.NewUpdateProductCommand(existing.ID(), "", decimal.NewFromInt(-5))
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProductCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, errs.ErrDomainValidation)
	// the stored product keeps its previous state
	assert.True(t, existing.Price().Equal(decimal.NewFromInt(10)))
	uow.AssertExpectations(t)
}

func TestUpdateProductCommandHandler_Handle_ConcurrentDeletion(t *testing.T) {
	ctx := t.Context()
	existing := newTestProduct(t, decimal.NewFromInt(10))
	cmd, err := commands.NewUpdateProductCommand(existing.ID(), "Large Teddy Bear", decimal.NewFromInt(15))
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		productRepo.On("Update", mock.Anything, existing).Return(gorm.ErrRecordNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProductCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, errs.ErrOperationFailed)
	uow.AssertExpectations(t)
}
