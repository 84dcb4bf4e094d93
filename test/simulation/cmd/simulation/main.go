// Command simulation drives a synthetic request stream against a router and
// reports load distribution statistics, for comparing strategies under the
// same workload.
package main

import (
	"errors"
	"flag"
	"log"
	"math/rand/v2"
	"time"

	routing "github.com/DevJadhav/intelligent-routing"
	simconfig "github.com/DevJadhav/intelligent-routing/test/simulation/internal/config"
	"github.com/DevJadhav/intelligent-routing/test/simulation/internal/stats"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (defaults to the reference workload)")
	seed := flag.Uint64("seed", 0, "Random seed for request costs (0 = nondeterministic)")
	flag.Parse()

	cfg := simconfig.DefaultConfig()
	if *configPath != "" {
		loaded, err := simconfig.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}

	accelerators := make([]routing.AcceleratorConfig, cfg.Pool.Count)
	for i := range accelerators {
		accelerators[i] = routing.AcceleratorConfig{ID: i, Capacity: cfg.Pool.Capacity}
	}

	router, err := routing.NewRouterFromConfig(&routing.Config{
		Strategy:     cfg.Strategy,
		Accelerators: accelerators,
	})
	if err != nil {
		log.Fatalf("Failed to create router: %v", err)
	}

	log.Printf("Starting simulation: strategy=%s pool=%d capacity=%d requests=%d",
		cfg.Strategy, cfg.Pool.Count, cfg.Pool.Capacity, cfg.Simulation.Requests)

	var rng *rand.Rand
	if *seed == 0 {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	} else {
		rng = rand.New(rand.NewPCG(*seed, *seed))
	}
	costSpan := cfg.Simulation.MaxCost - cfg.Simulation.MinCost

	start := time.Now()
	for i := 0; i < cfg.Simulation.Requests; i++ {
		cost := cfg.Simulation.MinCost + rng.Uint32N(costSpan)
		req := routing.NewRequest(uint64(i), cost, 1)

		if _, err := router.RouteRequest(req); err != nil && !errors.Is(err, routing.ErrNoAcceleratorAvailable) {
			log.Fatalf("Unexpected routing error: %v", err)
		}

		// Periodic decay models request completion freeing capacity.
		if cfg.Simulation.DecayEvery > 0 && i%cfg.Simulation.DecayEvery == 0 {
			for _, acc := range router.Accelerators() {
				acc.RemoveLoad(cfg.Simulation.DecayAmount)
			}
		}
	}
	elapsed := time.Since(start)

	routerStats := router.Stats()
	report := stats.Collect(router.Accelerators(), routerStats.Admitted, routerStats.Rejected)

	log.Printf("Simulation complete in %v", elapsed)
	log.Printf("Total requests: %d", cfg.Simulation.Requests)
	log.Print(report.String())
}
