package strategy

import (
	"sync"
	"testing"

	"github.com/DevJadhav/intelligent-routing/types"
	"github.com/stretchr/testify/require"
)

func makePool(t *testing.T, capacities ...uint32) []*types.Accelerator {
	t.Helper()

	pool := make([]*types.Accelerator, len(capacities))
	for i, c := range capacities {
		pool[i] = types.NewAccelerator(i, c)
	}

	return pool
}

func TestRoundRobin_Select(t *testing.T) {
	req := types.NewRequest(1, 1, 0)

	t.Run("visits every index exactly once per cycle", func(t *testing.T) {
		rr := NewRoundRobin()
		pool := makePool(t, 100, 100, 100, 100)

		seen := make(map[int]int)
		for i := 0; i < len(pool); i++ {
			idx, err := rr.Select(pool, req)
			require.NoError(t, err)
			seen[idx]++
		}

		require.Len(t, seen, len(pool))
		for idx, count := range seen {
			require.Equal(t, 1, count, "index %d visited %d times in one cycle", idx, count)
		}
	})

	t.Run("probes forward past unavailable accelerators", func(t *testing.T) {
		rr := NewRoundRobin()
		pool := makePool(t, 100, 100, 100)
		pool[0].SetHealthy(false)

		// Counter starts at 0, so the candidate is index 0; the probe must
		// land on index 1.
		idx, err := rr.Select(pool, req)

		require.NoError(t, err)
		require.Equal(t, 1, idx)
	})

	t.Run("probe wraps around the end of the pool", func(t *testing.T) {
		rr := NewRoundRobin()
		pool := makePool(t, 100, 100, 100)
		pool[2].SetHealthy(false)

		// Advance the counter so the candidate is the unavailable index 2.
		_, err := rr.Select(pool, req)
		require.NoError(t, err)
		_, err = rr.Select(pool, req)
		require.NoError(t, err)

		idx, err := rr.Select(pool, req)

		require.NoError(t, err)
		require.Equal(t, 0, idx)
	})

	t.Run("counter advances once per call even when probing", func(t *testing.T) {
		rr := NewRoundRobin()
		pool := makePool(t, 100, 100, 100)
		pool[0].SetHealthy(false)

		// First call: candidate 0 unavailable, probe lands on 1.
		idx, err := rr.Select(pool, req)
		require.NoError(t, err)
		require.Equal(t, 1, idx)

		// Second call: candidate must be 1, not 2 — probing did not consume
		// extra counter values.
		idx, err = rr.Select(pool, req)
		require.NoError(t, err)
		require.Equal(t, 1, idx)
	})

	t.Run("returns error for empty pool", func(t *testing.T) {
		rr := NewRoundRobin()

		_, err := rr.Select(nil, req)

		require.ErrorIs(t, err, types.ErrNoAcceleratorAvailable)
	})

	t.Run("returns error when all accelerators are unavailable", func(t *testing.T) {
		rr := NewRoundRobin()
		pool := makePool(t, 100, 100)
		pool[0].SetHealthy(false)
		pool[1].SetHealthy(false)

		_, err := rr.Select(pool, req)

		require.ErrorIs(t, err, types.ErrNoAcceleratorAvailable)
	})

	t.Run("concurrent callers each claim a distinct counter value", func(t *testing.T) {
		const callers = 8

		rr := NewRoundRobin()
		pool := makePool(t, 100, 100, 100, 100, 100, 100, 100, 100)

		var (
			mu   sync.Mutex
			seen = make(map[int]int)
			wg   sync.WaitGroup
		)
		for c := 0; c < callers; c++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				idx, err := rr.Select(pool, req)
				require.NoError(t, err)
				mu.Lock()
				seen[idx]++
				mu.Unlock()
			}()
		}
		wg.Wait()

		// Eight concurrent calls over eight available accelerators must land
		// on eight distinct indices.
		require.Len(t, seen, callers)
	})
}

func TestRoundRobin_Name(t *testing.T) {
	require.Equal(t, NameRoundRobin, NewRoundRobin().Name())
}
