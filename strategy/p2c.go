package strategy

import (
	"math/rand/v2"
	"sync"

	"github.com/DevJadhav/intelligent-routing/types"
)

// PowerOfTwoChoices implements randomized two-choice selection.
//
// Each call draws two independent uniform indices (with replacement) and picks
// the less loaded available one, with ties favoring the first draw. This keeps
// selection O(1) regardless of pool size while concentrating far less load on
// the busiest accelerator than a single random choice would.
type PowerOfTwoChoices struct {
	// rng is nil by default, which selects the shared, lock-free global
	// source. A caller-provided source is guarded by mu since rand.Rand is
	// not safe for concurrent use.
	mu  sync.Mutex
	rng *rand.Rand
}

var _ types.SelectionStrategy = (*PowerOfTwoChoices)(nil)

// PowerOfTwoChoicesOption configures a PowerOfTwoChoices strategy.
type PowerOfTwoChoicesOption func(*PowerOfTwoChoices)

// WithRandSource sets a deterministic random source.
//
// Intended for tests and reproducible simulations; production callers should
// rely on the default global source.
//
// Parameters:
//   - src: Random source seeding the strategy's draws
//
// Returns:
//   - PowerOfTwoChoicesOption: Configuration option
func WithRandSource(src rand.Source) PowerOfTwoChoicesOption {
	return func(p *PowerOfTwoChoices) {
		p.rng = rand.New(src)
	}
}

// NewPowerOfTwoChoices creates a new power-of-two-choices strategy.
//
// Parameters:
//   - opts: Optional configuration (WithRandSource)
//
// Returns:
//   - *PowerOfTwoChoices: Initialized strategy
//
// Example:
//
//	p2c := strategy.NewPowerOfTwoChoices()
//	router, err := routing.NewRouter(p2c)
func NewPowerOfTwoChoices(opts ...PowerOfTwoChoicesOption) *PowerOfTwoChoices {
	p := &PowerOfTwoChoices{}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// draw returns two independent uniform indices in [0, n).
func (p *PowerOfTwoChoices) draw(n int) (int, int) {
	if p.rng == nil {
		return rand.IntN(n), rand.IntN(n)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.rng.IntN(n), p.rng.IntN(n)
}

// Select draws two random candidates and resolves between them:
//
//  1. If the first draw is unavailable, return the second draw if it is
//     available, otherwise ErrNoAcceleratorAvailable.
//  2. If only the second draw is unavailable, return the first draw.
//  3. Otherwise return the draw with the lower load; ties favor the first.
//
// Returns types.ErrNoAcceleratorAvailable when the pool is empty or both
// draws are unavailable.
func (p *PowerOfTwoChoices) Select(pool []*types.Accelerator, _ types.Request) (int, error) {
	if len(pool) == 0 {
		return -1, types.ErrNoAcceleratorAvailable
	}

	first, second := p.draw(len(pool))

	if !pool[first].IsAvailable() {
		if pool[second].IsAvailable() {
			return second, nil
		}

		return -1, types.ErrNoAcceleratorAvailable
	}
	if !pool[second].IsAvailable() {
		return first, nil
	}

	if pool[first].CurrentLoad() <= pool[second].CurrentLoad() {
		return first, nil
	}

	return second, nil
}

// Name returns the registry key for this strategy.
func (p *PowerOfTwoChoices) Name() string {
	return NameP2C
}
