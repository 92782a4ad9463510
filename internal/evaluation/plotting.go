package evaluation

import (
	"fmt"
	"io"
	"strings"
)

const maxBarWidth = 50

// PlotCutoffMeans draws one horizontal bar per cutoff, scaled against the
// largest mean. Cutoffs keep the order they were requested in.
func PlotCutoffMeans(w io.Writer, title string, ks []int, means []float64) {
	fmt.Fprintf(w, "\n%s:\n", title)
	fmt.Fprintln(w, "  Cutoff | Mean     | Bar Chart")
	fmt.Fprintln(w, "---------|----------|"+strings.Repeat("-", maxBarWidth))

	if len(ks) == 0 || len(ks) != len(means) {
		return
	}

	maxMean := means[0]
	for _, m := range means[1:] {
		maxMean = max(maxMean, m)
	}

	for i, k := range ks {
		var barWidth int
		if maxMean > 0 && means[i] > 0 {
			barWidth = int(means[i] / maxMean * float64(maxBarWidth))
		}

		bar := strings.Repeat("█", barWidth)
		if barWidth == 0 {
			bar = "▏"
		}

		fmt.Fprintf(w, "%8s | %.6f | %s\n", fmt.Sprintf("@%d", k), means[i], bar)
	}

	fmt.Fprintf(w, "\nScale: Max=%.6f\n", maxMean)
}

// PlotReport plots the per-cutoff means of every metric in the report.
func PlotReport(w io.Writer, title string, r Report) {
	for _, res := range r.Results {
		PlotCutoffMeans(w, fmt.Sprintf("%s: %s (batch=%d)", title, strings.ToUpper(string(res.Metric)), r.Batch), r.Cutoffs, res.Means)
	}
}
