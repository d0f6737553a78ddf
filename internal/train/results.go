package train

import (
	"fmt"
	"strings"
	"time"
)

// Results is the immutable outcome of a training run: the final iteration's
// values, the termination reason, and whichever histories were reserved.
// It is created once, when the run terminates, and owned by the caller.
type Results struct {
	FinalParameters           []float64
	FinalParametersNorm       float64
	FinalPerformance          float64
	FinalSelectionPerformance float64
	FinalGradient             []float64
	FinalGradientNorm         float64
	FinalDirection            []float64
	FinalRate                 float64

	Elapsed    time.Duration
	Iterations int
	Reason     Reason

	History *History
}

// FinalResultsTable renders the final values as label/value rows, the way a
// report or log sink would print them. The trainer configuration is passed
// in explicitly so the rendering stays a stateless function of its inputs.
func FinalResultsTable(r *Results, config Config) [][2]string {
	rows := [][2]string{
		{"Training direction method", config.Method.String()},
		{"Final parameters norm", formatFloat(r.FinalParametersNorm)},
		{"Final performance", formatFloat(r.FinalPerformance)},
		{"Final gradient norm", formatFloat(r.FinalGradientNorm)},
		{"Final training rate", formatFloat(r.FinalRate)},
		{"Iterations number", fmt.Sprintf("%d", r.Iterations)},
		{"Elapsed time", fmt.Sprintf("%.3fs", r.Elapsed.Seconds())},
		{"Stopping condition", r.Reason.String()},
	}
	if r.FinalSelectionPerformance != 0 {
		rows = append(rows, [2]string{"Final selection performance", formatFloat(r.FinalSelectionPerformance)})
	}
	return rows
}

// String renders the final values without configuration context; use
// FinalResultsTable when the run configuration is at hand.
func (r *Results) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Training results\n")
	fmt.Fprintf(&b, "  Final parameters norm: %s\n", formatFloat(r.FinalParametersNorm))
	fmt.Fprintf(&b, "  Final performance: %s\n", formatFloat(r.FinalPerformance))
	fmt.Fprintf(&b, "  Final gradient norm: %s\n", formatFloat(r.FinalGradientNorm))
	fmt.Fprintf(&b, "  Final training rate: %s\n", formatFloat(r.FinalRate))
	fmt.Fprintf(&b, "  Iterations number: %d\n", r.Iterations)
	fmt.Fprintf(&b, "  Elapsed time: %.3fs\n", r.Elapsed.Seconds())
	fmt.Fprintf(&b, "  Stopping condition: %s\n", r.Reason)
	return b.String()
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.6g", v)
}
