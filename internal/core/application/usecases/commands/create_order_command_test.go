package commands_test

import (
	"testing"

	"opsboard/internal/core/application/usecases/commands"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/order"
	"opsboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderDetails() order.Details {
	return order.Details{
		JobName:    "Lobby Sofa",
		JobNumber:  "J-1042",
		DesignerID: kernel.NewUUID(),
		SourceID:   kernel.NewUUID(),
	}
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), validOrderDetails(), kernel.PriorityHigh,
		)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, kernel.PriorityHigh, cmd.Priority())
	})

	t.Run("missing order id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.UUID{}, kernel.NewUUID(), validOrderDetails(), kernel.PriorityStandard,
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing organization id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.UUID{}, validOrderDetails(), kernel.PriorityStandard,
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
