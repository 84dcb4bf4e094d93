package strategy

import (
	"math/rand/v2"
	"testing"

	"github.com/DevJadhav/intelligent-routing/types"
	"github.com/stretchr/testify/require"
)

func TestPowerOfTwoChoices_Select(t *testing.T) {
	req := types.NewRequest(1, 1, 0)

	t.Run("returns error for empty pool", func(t *testing.T) {
		p2c := NewPowerOfTwoChoices()

		_, err := p2c.Select(nil, req)

		require.ErrorIs(t, err, types.ErrNoAcceleratorAvailable)
	})

	t.Run("single available accelerator is always chosen", func(t *testing.T) {
		p2c := NewPowerOfTwoChoices()
		pool := makePool(t, 100)

		for i := 0; i < 50; i++ {
			idx, err := p2c.Select(pool, req)
			require.NoError(t, err)
			require.Equal(t, 0, idx)
		}
	})

	t.Run("never returns an unavailable accelerator", func(t *testing.T) {
		p2c := NewPowerOfTwoChoices(WithRandSource(rand.NewPCG(1, 2)))
		pool := makePool(t, 10, 10, 10, 10, 10)
		pool[1].SetHealthy(false)
		require.NoError(t, pool[3].AddLoad(10)) // full

		for i := 0; i < 1000; i++ {
			idx, err := p2c.Select(pool, req)
			if err != nil {
				require.ErrorIs(t, err, types.ErrNoAcceleratorAvailable)
				continue
			}
			require.True(t, pool[idx].IsAvailable(), "selected unavailable index %d", idx)
		}
	})

	t.Run("returns error when both draws are unavailable", func(t *testing.T) {
		p2c := NewPowerOfTwoChoices()
		pool := makePool(t, 10, 10)
		pool[0].SetHealthy(false)
		pool[1].SetHealthy(false)

		_, err := p2c.Select(pool, req)

		require.ErrorIs(t, err, types.ErrNoAcceleratorAvailable)
	})

	t.Run("prefers the less loaded of the two draws", func(t *testing.T) {
		p2c := NewPowerOfTwoChoices(WithRandSource(rand.NewPCG(7, 11)))
		pool := makePool(t, 100, 100)
		require.NoError(t, pool[0].AddLoad(90))

		// With two accelerators, any draw pair containing index 1 must pick
		// index 1 (lower load); only the (0,0) pair may pick index 0.
		picks := make(map[int]int)
		for i := 0; i < 400; i++ {
			idx, err := p2c.Select(pool, req)
			require.NoError(t, err)
			picks[idx]++
		}

		// P(0) = P(both draws are 0) = 1/4, so index 1 must dominate.
		require.Greater(t, picks[1], picks[0])
	})

	t.Run("ties favor the first draw", func(t *testing.T) {
		// Equal loads mean every pair resolves to its first draw, so the
		// distribution must be uniform over a deterministic source's draws.
		src := rand.NewPCG(42, 42)
		p2c := NewPowerOfTwoChoices(WithRandSource(src))
		pool := makePool(t, 100, 100, 100)

		expect := rand.New(rand.NewPCG(42, 42))
		for i := 0; i < 100; i++ {
			want := expect.IntN(len(pool))
			expect.IntN(len(pool)) // second draw is discarded on a tie

			idx, err := p2c.Select(pool, req)
			require.NoError(t, err)
			require.Equal(t, want, idx)
		}
	})
}

func TestPowerOfTwoChoices_Name(t *testing.T) {
	require.Equal(t, NameP2C, NewPowerOfTwoChoices().Name())
}
