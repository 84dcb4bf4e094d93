package strategy

import (
	"testing"

	"github.com/DevJadhav/intelligent-routing/types"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("constructs each built-in strategy by key", func(t *testing.T) {
		for _, name := range Names() {
			strat, err := New(name)
			require.NoError(t, err, "strategy %q", name)
			require.NotNil(t, strat)
			require.Equal(t, name, strat.Name())
		}
	})

	t.Run("fails cleanly on an unrecognized key", func(t *testing.T) {
		_, err := New("weighted_random")

		require.Error(t, err)
		require.ErrorIs(t, err, types.ErrUnknownStrategy)
		require.Contains(t, err.Error(), "weighted_random")
	})

	t.Run("does not silently default on empty key", func(t *testing.T) {
		_, err := New("")

		require.ErrorIs(t, err, types.ErrUnknownStrategy)
	})

	t.Run("round robin instances do not share a counter", func(t *testing.T) {
		a, err := New(NameRoundRobin)
		require.NoError(t, err)
		b, err := New(NameRoundRobin)
		require.NoError(t, err)

		pool := makePool(t, 100, 100)
		req := types.NewRequest(1, 1, 0)

		idxA, err := a.Select(pool, req)
		require.NoError(t, err)
		idxB, err := b.Select(pool, req)
		require.NoError(t, err)

		require.Equal(t, idxA, idxB)
	})
}
