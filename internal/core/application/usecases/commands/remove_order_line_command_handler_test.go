package commands_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"nannyadmin/internal/core/application/usecases/commands"
	"nannyadmin/internal/core/domain/model/kernel"
	"nannyadmin/internal/core/domain/model/order"
	"nannyadmin/internal/pkg/errs"
)

func TestNewRemoveOrderLineCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		orderID := kernel.NewUUID()
		lineID := kernel.NewUUID()

		cmd, err := commands.NewRemoveOrderLineCommand(orderID, lineID)

		require.NoError(t, err)
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, lineID, cmd.LineID())
	})

	t.Run("invalid line id", func(t *testing.T) {
		_, err := commands.NewRemoveOrderLineCommand(kernel.NewUUID(), kernel.UUID{})

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestRemoveOrderLineCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.Created, false)
	line, err := order.NewOrderLine(stored.ID(), kernel.NewUUID(), 1, decimal.NewFromInt(3))
	require.NoError(t, err)
	require.NoError(t, stored.AddLine(line))
	cmd, err := commands.NewRemoveOrderLineCommand(stored.ID(), line.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		orderRepo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveOrderLineCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, stored.Lines())
	uow.AssertExpectations(t)
}

func TestRemoveOrderLineCommandHandler_Handle_LineNotFound(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.Created, true)
	unknownLineID := kernel.NewUUID()
	cmd, err := commands.NewRemoveOrderLineCommand(stored.ID(), unknownLineID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveOrderLineCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	// removing a line that is not on the order is surfaced as not found,
	// no update is attempted
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.Len(t, stored.Lines(), 1)
	uow.AssertExpectations(t)
}

func TestRemoveOrderLineCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.Completed, true)
	lineID := stored.Lines()[0].ID()
	cmd, err := commands.NewRemoveOrderLineCommand(stored.ID(), lineID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveOrderLineCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrInvalidEntityState)
	uow.AssertExpectations(t)
}

func TestRemoveOrderLineCommandHandler_Handle_ConcurrentDeletion(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.Created, false)
	line, err := order.NewOrderLine(stored.ID(), kernel.NewUUID(), 1, decimal.NewFromInt(3))
	require.NoError(t, err)
	require.NoError(t, stored.AddLine(line))
	cmd, err := commands.NewRemoveOrderLineCommand(stored.ID(), line.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		orderRepo.On("Update", mock.Anything, stored).Return(gorm.ErrRecordNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveOrderLineCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrOperationFailed)
	uow.AssertExpectations(t)
}
