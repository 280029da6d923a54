package cpureport

import (
	"fmt"
	"strings"
)

// StatisticsTable formats one row per dataset: label plus the six
// statistics, two decimals, left-aligned fixed-width columns. stats and
// labels are parallel slices.
func StatisticsTable(stats []Stats, labels []string) string {
	lines := []string{
		"",
		strings.Repeat("=", 90),
		"CPU UTILIZATION STATISTICS",
		strings.Repeat("=", 90),
		"",
		fmt.Sprintf("%-25s %-10s %-10s %-10s %-10s %-10s %-10s",
			"Scenario", "Min %", "Mean %", "Median %", "P95 %", "P99 %", "Max %"),
		strings.Repeat("-", 90),
	}
	for i, s := range stats {
		lines = append(lines, fmt.Sprintf("%-25s %-10.2f %-10.2f %-10.2f %-10.2f %-10.2f %-10.2f",
			labels[i], s.Min, s.Mean, s.Median, s.P95, s.P99, s.Max))
	}
	lines = append(lines, strings.Repeat("=", 90), "")
	return strings.Join(lines, "\n")
}
