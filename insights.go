package cpureport

import (
	"fmt"
	"sort"
	"strings"
)

// CapacityPercent is the assumed capacity ceiling for headroom: the test
// hosts have 4 CPU cores at 100% each. It is a reporting policy, not
// measured from the input.
const CapacityPercent = 400

// ComparisonInsights names the datasets with the lowest and highest
// average and peak CPU, and lists each dataset's remaining headroom
// against CapacityPercent. Sorting is stable, so datasets with equal
// means or peaks rank in input order.
func ComparisonInsights(stats []Stats, labels []string) string {
	byMean := make([]int, len(stats))
	byPeak := make([]int, len(stats))
	for i := range stats {
		byMean[i] = i
		byPeak[i] = i
	}
	sort.SliceStable(byMean, func(a, b int) bool {
		return stats[byMean[a]].Mean < stats[byMean[b]].Mean
	})
	sort.SliceStable(byPeak, func(a, b int) bool {
		return stats[byPeak[a]].Max < stats[byPeak[b]].Max
	})

	lines := []string{
		strings.Repeat("=", 90),
		"KEY INSIGHTS",
		strings.Repeat("=", 90),
		"",
	}
	low, high := byMean[0], byMean[len(byMean)-1]
	lines = append(lines,
		fmt.Sprintf("🟢 LOWEST AVG CPU:  %s (%.1f%%)", labels[low], stats[low].Mean),
		fmt.Sprintf("🔴 HIGHEST AVG CPU: %s (%.1f%%)", labels[high], stats[high].Mean),
		"",
	)
	low, high = byPeak[0], byPeak[len(byPeak)-1]
	lines = append(lines,
		fmt.Sprintf("🟢 LOWEST PEAK CPU:  %s (%.1f%%)", labels[low], stats[low].Max),
		fmt.Sprintf("🔴 HIGHEST PEAK CPU: %s (%.1f%%)", labels[high], stats[high].Max),
		"",
		"CPU EFFICIENCY:",
	)
	for i, s := range stats {
		headroom := CapacityPercent - s.Mean
		lines = append(lines, fmt.Sprintf("  %s: %.1f%% headroom remaining", labels[i], headroom))
	}
	lines = append(lines, "", strings.Repeat("=", 90))
	return strings.Join(lines, "\n")
}
