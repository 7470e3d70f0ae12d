package kernel_test

import (
	"testing"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCost(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, err := kernel.NewCost(12500)
		require.NoError(t, err)
		assert.Equal(t, int64(12500), c.Cents())
		assert.InDelta(t, 125.0, c.Dollars(), 0.001)
	})

	t.Run("zero is valid", func(t *testing.T) {
		c, err := kernel.NewCost(0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), c.Cents())
	})

	t.Run("negative is rejected", func(t *testing.T) {
		_, err := kernel.NewCost(-1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewCostFromDollars(t *testing.T) {
	c, err := kernel.NewCostFromDollars(99.995)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), c.Cents())

	_, err = kernel.NewCostFromDollars(-0.01)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestCost_String(t *testing.T) {
	c, err := kernel.NewCost(5075)
	require.NoError(t, err)
	assert.Equal(t, "50.75", c.String())
}
