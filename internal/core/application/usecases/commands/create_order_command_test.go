package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nannyadmin/internal/core/application/usecases/commands"
	"nannyadmin/internal/core/domain/model/kernel"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(customerID, []commands.OrderLineInput{
		{ProductID: productID, Count: 2},
	})

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, customerID, cmd.CustomerID())
	require.Len(t, cmd.Lines(), 1)
	assert.Equal(t, productID, cmd.Lines()[0].ProductID)
	assert.Equal(t, 2, cmd.Lines()[0].Count)
}

func TestNewCreateOrderCommand_NoLines(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), nil)

	require.NoError(t, err)
	assert.Empty(t, cmd.Lines())
}

func TestNewCreateOrderCommand_InvalidCustomerID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error

	_, err := commands.NewCreateOrderCommand(invalidID, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidProductID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), []commands.OrderLineInput{
		{ProductID: kernel.UUID{}, Count: 1},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand

	require.Error(t, cmd.Validate())
}
