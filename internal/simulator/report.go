package simulator

import (
	"fmt"
	"io"
	"time"

	"github.com/lox/twentyone/internal/game"
)

// PrintSummary writes a summary of simulation results
func PrintSummary(w io.Writer, report *Report) {
	stats := report.Stats
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== FINAL RESULTS: %s bot ===\n", report.Strategy)
	fmt.Fprintf(w, "Matches played: %d (%d rounds, seed %d, %d workers, %s)\n",
		stats.Matches, stats.Rounds, report.Seed, report.Workers, report.Elapsed.Round(time.Millisecond))

	fmt.Fprintf(w, "\n=== MATCH RESULTS ===\n")
	fmt.Fprintf(w, "Rich: %d (%.1f%%)\n", stats.RichMatches, stats.RichRate()*100)
	fmt.Fprintf(w, "Broke: %d (%.1f%%)\n", stats.BrokeMatches, (1-stats.RichRate())*100)
	fmt.Fprintf(w, "Net units: %+d\n", stats.NetUnits())

	fmt.Fprintf(w, "\n=== MATCH LENGTH ===\n")
	fmt.Fprintf(w, "Mean: %.2f rounds (95%% CI [%.2f, %.2f])\n", stats.Mean(), low, high)
	fmt.Fprintf(w, "Median: %.1f, Std Dev: %.2f\n", stats.Median(), stats.StdDev())
	fmt.Fprintf(w, "Percentiles: P5=%.0f, P25=%.0f, P75=%.0f, P95=%.0f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))
	fmt.Fprintf(w, "Shortest: %d, Longest: %d\n", stats.ShortestMatch, stats.LongestMatch)

	fmt.Fprintf(w, "\n=== ROUND OUTCOMES ===\n")
	for _, outcome := range game.Outcomes {
		fmt.Fprintf(w, "%-12s %7d (%.1f%%)\n", outcome, stats.Outcomes[outcome], stats.OutcomeRate(outcome)*100)
	}
	fmt.Fprintf(w, "Reshuffles: %d\n", stats.Reshuffles)
}
