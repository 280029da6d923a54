package cpureport_test

import (
	"strings"
	"testing"

	"github.com/perftools/cpureport"
)

func TestComparisonInsightsNamesLowestAndHighestAverage(t *testing.T) {
	t.Parallel()
	stats := []cpureport.Stats{
		{Mean: 10, Max: 20},
		{Mean: 50, Max: 60},
		{Mean: 30, Max: 40},
	}
	insights := cpureport.ComparisonInsights(stats, []string{"quiet", "busy", "middle"})
	for _, want := range []string{
		"🟢 LOWEST AVG CPU:  quiet (10.0%)",
		"🔴 HIGHEST AVG CPU: busy (50.0%)",
	} {
		if !strings.Contains(insights, want) {
			t.Errorf("want %q in insights:\n%s", want, insights)
		}
	}
}

func TestComparisonInsightsNamesLowestAndHighestPeak(t *testing.T) {
	t.Parallel()
	stats := []cpureport.Stats{
		{Mean: 30, Max: 99},
		{Mean: 40, Max: 45},
	}
	insights := cpureport.ComparisonInsights(stats, []string{"spiky", "steady"})
	for _, want := range []string{
		"🟢 LOWEST PEAK CPU:  steady (45.0%)",
		"🔴 HIGHEST PEAK CPU: spiky (99.0%)",
	} {
		if !strings.Contains(insights, want) {
			t.Errorf("want %q in insights:\n%s", want, insights)
		}
	}
}

func TestComparisonInsightsReportsHeadroomAgainstFourCoreCeiling(t *testing.T) {
	t.Parallel()
	stats := []cpureport.Stats{
		{Mean: 10, Max: 20},
		{Mean: 50, Max: 60},
	}
	insights := cpureport.ComparisonInsights(stats, []string{"quiet", "busy"})
	for _, want := range []string{
		"  quiet: 390.0% headroom remaining",
		"  busy: 350.0% headroom remaining",
	} {
		if !strings.Contains(insights, want) {
			t.Errorf("want %q in insights:\n%s", want, insights)
		}
	}
}

func TestComparisonInsightsBreaksTiesByInputOrder(t *testing.T) {
	t.Parallel()
	stats := []cpureport.Stats{
		{Mean: 25, Max: 30},
		{Mean: 25, Max: 30},
	}
	insights := cpureport.ComparisonInsights(stats, []string{"first", "second"})
	if !strings.Contains(insights, "🟢 LOWEST AVG CPU:  first (25.0%)") {
		t.Errorf("want earlier dataset reported as lowest on a tie:\n%s", insights)
	}
	if !strings.Contains(insights, "🔴 HIGHEST AVG CPU: second (25.0%)") {
		t.Errorf("want later dataset reported as highest on a tie:\n%s", insights)
	}
}
