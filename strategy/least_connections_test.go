package strategy

import (
	"testing"

	"github.com/DevJadhav/intelligent-routing/types"
	"github.com/stretchr/testify/require"
)

func TestLeastConnections_Select(t *testing.T) {
	req := types.NewRequest(1, 1, 0)

	t.Run("returns the accelerator with the minimum load", func(t *testing.T) {
		lc := NewLeastConnections()
		pool := makePool(t, 100, 100)
		require.NoError(t, pool[0].AddLoad(50))
		require.NoError(t, pool[1].AddLoad(30))

		idx, err := lc.Select(pool, req)

		require.NoError(t, err)
		require.Equal(t, 1, idx)
	})

	t.Run("ties go to the earliest index", func(t *testing.T) {
		lc := NewLeastConnections()
		pool := makePool(t, 100, 100, 100)
		require.NoError(t, pool[0].AddLoad(20))
		require.NoError(t, pool[1].AddLoad(10))
		require.NoError(t, pool[2].AddLoad(10))

		idx, err := lc.Select(pool, req)

		require.NoError(t, err)
		require.Equal(t, 1, idx)
	})

	t.Run("skips unavailable accelerators even at lower load", func(t *testing.T) {
		lc := NewLeastConnections()
		pool := makePool(t, 100, 100)
		require.NoError(t, pool[1].AddLoad(90))
		pool[0].SetHealthy(false)

		idx, err := lc.Select(pool, req)

		require.NoError(t, err)
		require.Equal(t, 1, idx)
	})

	t.Run("skips full accelerators", func(t *testing.T) {
		lc := NewLeastConnections()
		pool := makePool(t, 10, 100)
		require.NoError(t, pool[0].AddLoad(10))
		require.NoError(t, pool[1].AddLoad(99))

		idx, err := lc.Select(pool, req)

		require.NoError(t, err)
		require.Equal(t, 1, idx)
	})

	t.Run("returns error for empty pool", func(t *testing.T) {
		lc := NewLeastConnections()

		_, err := lc.Select(nil, req)

		require.ErrorIs(t, err, types.ErrNoAcceleratorAvailable)
	})

	t.Run("returns error when no accelerator is available", func(t *testing.T) {
		lc := NewLeastConnections()
		pool := makePool(t, 10, 10)
		require.NoError(t, pool[0].AddLoad(10))
		pool[1].SetHealthy(false)

		_, err := lc.Select(pool, req)

		require.ErrorIs(t, err, types.ErrNoAcceleratorAvailable)
	})
}

func TestLeastConnections_Name(t *testing.T) {
	require.Equal(t, NameLeastConnections, NewLeastConnections().Name())
}
