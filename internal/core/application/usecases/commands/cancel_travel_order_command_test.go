package commands_test

import (
	"testing"

	"traveldesk/internal/core/application/usecases/commands"
	"traveldesk/internal/core/domain/model/actor"
	"traveldesk/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelTravelOrderCommand(t *testing.T) {
	t.Run("should create command with valid parameters", func(t *testing.T) {
		requester := newTestActor(t, false)
		orderID := kernel.NewUUID()

		cmd, err := commands.NewCancelTravelOrderCommand(requester, orderID)

		require.NoError(t, err)
		assert.Equal(t, requester, cmd.Requester())
		assert.True(t, cmd.TravelOrderID().IsEqual(orderID))
		require.NoError(t, cmd.Validate())
	})

	t.Run("should fail with unconstructed actor", func(t *testing.T) {
		_, err := commands.NewCancelTravelOrderCommand(actor.Actor{}, kernel.NewUUID())

		require.Error(t, err)
	})

	t.Run("should fail with invalid order id", func(t *testing.T) {
		_, err := commands.NewCancelTravelOrderCommand(newTestActor(t, false), kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.CancelTravelOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCancelTravelOrderCommandIsNotConstructed)
	})
}
