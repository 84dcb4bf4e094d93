// Package stats aggregates load distribution statistics for simulation runs.
package stats

import (
	"fmt"

	"github.com/DevJadhav/intelligent-routing/types"
	"gonum.org/v1/gonum/stat"
)

// Report summarizes one simulation run.
type Report struct {
	// Admitted and Rejected are the router's cumulative routing counters.
	Admitted int64
	Rejected int64

	// MeanLoad is the average load across the pool at the end of the run.
	MeanLoad float64

	// StdDev is the population standard deviation of the final loads; lower
	// means better balance.
	StdDev float64

	// MaxLoad is the highest final load in the pool.
	MaxLoad uint32
}

// Collect computes a report from the final pool state and routing counters.
//
// Parameters:
//   - pool: Final accelerator pool
//   - admitted: Total admitted requests
//   - rejected: Total rejected requests
//
// Returns:
//   - Report: Aggregated statistics
func Collect(pool []*types.Accelerator, admitted, rejected int64) Report {
	loads := make([]float64, len(pool))

	var maxLoad uint32
	for i, acc := range pool {
		load := acc.CurrentLoad()
		loads[i] = float64(load)
		if load > maxLoad {
			maxLoad = load
		}
	}

	report := Report{
		Admitted: admitted,
		Rejected: rejected,
		MaxLoad:  maxLoad,
	}
	if len(loads) > 0 {
		report.MeanLoad = stat.Mean(loads, nil)
		report.StdDev = stat.PopStdDev(loads, nil)
	}

	return report
}

// String renders the report in the driver's output format.
func (r Report) String() string {
	return fmt.Sprintf("admitted=%d rejected=%d mean_load=%.2f load_stddev=%.2f max_load=%d",
		r.Admitted, r.Rejected, r.MeanLoad, r.StdDev, r.MaxLoad)
}
