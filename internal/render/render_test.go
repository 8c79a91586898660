package render

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/openvitals/vitals-mcp/internal/models"
)

func testWindow() models.TimeWindow {
	return models.TimeWindow{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
	}
}

func heartSamples(n int) []models.HeartRateSample {
	base := time.Date(2024, 1, 6, 22, 0, 0, 0, time.UTC)
	samples := make([]models.HeartRateSample, 0, n)
	for i := 0; i < n; i++ {
		samples = append(samples, models.HeartRateSample{
			Timestamp: base.Add(-time.Duration(i) * time.Hour),
			Value:     60 + float64(i),
			Unit:      "bpm",
		})
	}
	return samples
}

func TestCumulative_Steps(t *testing.T) {
	out := Cumulative(models.CumulativeMetric{
		Kind:   models.MetricSteps,
		Window: testWindow(),
		Total:  12345,
		Unit:   "steps",
	})

	if !strings.Contains(out, "STEPS SUMMARY") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "Period: Jan 1, 2024 to Jan 7, 2024") {
		t.Errorf("missing period line:\n%s", out)
	}
	// Standalone steps keep two decimals.
	if !strings.Contains(out, "Total: 12345.00 steps") {
		t.Errorf("missing total line:\n%s", out)
	}
}

func TestCumulative_ActiveEnergy(t *testing.T) {
	out := Cumulative(models.CumulativeMetric{
		Kind:   models.MetricActiveEnergy,
		Window: testWindow(),
		Total:  345.678,
		Unit:   "kcal",
	})

	if !strings.Contains(out, "ACTIVE ENERGY SUMMARY") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "Total: 345.68 kcal") {
		t.Errorf("missing total line:\n%s", out)
	}
}

func TestHeartRate_Stats(t *testing.T) {
	samples := []models.HeartRateSample{
		{Timestamp: time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC), Value: 101.5, Unit: "bpm"},
		{Timestamp: time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC), Value: 58, Unit: "bpm"},
		{Timestamp: time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC), Value: 72.5, Unit: "bpm"},
	}
	out := HeartRate(samples)

	if !strings.Contains(out, "Samples: 3") {
		t.Errorf("missing count:\n%s", out)
	}
	if !strings.Contains(out, "Average: 77.3 bpm") {
		t.Errorf("missing average:\n%s", out)
	}
	if !strings.Contains(out, "Min: 58.0 bpm") {
		t.Errorf("missing min:\n%s", out)
	}
	if !strings.Contains(out, "Max: 101.5 bpm") {
		t.Errorf("missing max:\n%s", out)
	}
	if strings.Contains(out, "more samples") {
		t.Errorf("no truncation notice expected for 3 samples:\n%s", out)
	}
}

func TestHeartRate_TruncatesToTen(t *testing.T) {
	out := HeartRate(heartSamples(11))

	listed := strings.Count(out, " bpm\n") - 3 // minus avg/min/max lines
	if listed != 10 {
		t.Errorf("expected exactly 10 listed samples, got %d:\n%s", listed, out)
	}
	if !strings.Contains(out, "... and 1 more samples") {
		t.Errorf("missing truncation notice:\n%s", out)
	}
	// The listing keeps the incoming descending order: first listed
	// sample is the most recent one.
	idx := strings.Index(out, "2024-01-06 22:00")
	if idx == -1 {
		t.Errorf("most recent sample missing:\n%s", out)
	}
	if strings.Contains(out, "2024-01-06 12:00") {
		t.Errorf("11th sample should not be listed:\n%s", out)
	}
}

func TestHeartRate_Empty(t *testing.T) {
	out := HeartRate(nil)
	if !strings.Contains(out, "Samples: 0") {
		t.Errorf("missing count:\n%s", out)
	}
	if !strings.Contains(out, "No heart rate data recorded for this period.") {
		t.Errorf("missing no-data line:\n%s", out)
	}
}

func TestSleep_TotalExcludesAwake(t *testing.T) {
	base := time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)
	samples := []models.SleepSample{
		models.NewSleepSample(base.Add(4*time.Hour), base.Add(4*time.Hour+90*time.Minute), models.SleepCore),
		models.NewSleepSample(base.Add(2*time.Hour), base.Add(2*time.Hour+30*time.Minute), models.SleepAwake),
		models.NewSleepSample(base, base.Add(2*time.Hour), models.SleepDeep),
	}
	out := Sleep(samples)

	if !strings.Contains(out, "Sessions: 3") {
		t.Errorf("missing session count:\n%s", out)
	}
	// 2.0h Deep + 1.5h Core; the 0.5h Awake interval is excluded.
	if !strings.Contains(out, "Total sleep: 3.50 hours") {
		t.Errorf("wrong total sleep:\n%s", out)
	}
	for _, want := range []string{"Deep Sleep:", "Core Sleep:", "Awake:", "(2.00 hours)", "(1.50 hours)", "(0.50 hours)"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestSleep_Empty(t *testing.T) {
	out := Sleep(nil)
	if !strings.Contains(out, "Sessions: 0") {
		t.Errorf("missing count:\n%s", out)
	}
	if !strings.Contains(out, "No sleep data recorded for this period.") {
		t.Errorf("missing no-data line:\n%s", out)
	}
}

func testSummary() models.CombinedSummary {
	base := time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)
	return models.CombinedSummary{
		Window: testWindow(),
		Steps: models.CumulativeMetric{
			Kind: models.MetricSteps, Window: testWindow(), Total: 12345.67, Unit: "steps",
		},
		ActiveEnergy: models.CumulativeMetric{
			Kind: models.MetricActiveEnergy, Window: testWindow(), Total: 345.678, Unit: "kcal",
		},
		HeartRate: []models.HeartRateSample{
			{Timestamp: base, Value: 70, Unit: "bpm"},
			{Timestamp: base.Add(-time.Hour), Value: 74, Unit: "bpm"},
		},
		Sleep: []models.SleepSample{
			models.NewSleepSample(base, base.Add(7*time.Hour+15*time.Minute), models.SleepAsleep),
		},
	}
}

func TestCombined(t *testing.T) {
	out := Combined(testSummary())

	if !strings.Contains(out, "HEALTH SUMMARY") {
		t.Errorf("missing header:\n%s", out)
	}
	// Steps round to a whole number in the combined view only.
	if !strings.Contains(out, "Total: 12346 steps") {
		t.Errorf("combined steps should have 0 decimals:\n%s", out)
	}
	if !strings.Contains(out, "Total: 345.68 kcal") {
		t.Errorf("combined energy should have 2 decimals:\n%s", out)
	}
	if !strings.Contains(out, "Average: 72.0 bpm (2 samples)") {
		t.Errorf("missing heart-rate section:\n%s", out)
	}
	if !strings.Contains(out, "Total sleep: 7.25 hours (1 sessions)") {
		t.Errorf("missing sleep section:\n%s", out)
	}
	// No per-sample listings in the combined view.
	if strings.Contains(out, "Most recent samples") {
		t.Errorf("combined view must not list samples:\n%s", out)
	}
}

func TestCombined_NoData(t *testing.T) {
	summary := testSummary()
	summary.HeartRate = nil
	summary.Sleep = nil
	out := Combined(summary)

	if !strings.Contains(out, "No heart rate data recorded.") {
		t.Errorf("missing heart-rate no-data line:\n%s", out)
	}
	if !strings.Contains(out, "No sleep data recorded.") {
		t.Errorf("missing sleep no-data line:\n%s", out)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	summary := testSummary()
	if Combined(summary) != Combined(summary) {
		t.Error("Combined should be byte-identical for identical input")
	}
	samples := heartSamples(15)
	if HeartRate(samples) != HeartRate(samples) {
		t.Error("HeartRate should be byte-identical for identical input")
	}
}

func TestHeartRate_TruncationCounts(t *testing.T) {
	for _, n := range []int{11, 25} {
		out := HeartRate(heartSamples(n))
		want := fmt.Sprintf("... and %d more samples", n-10)
		if !strings.Contains(out, want) {
			t.Errorf("n=%d: missing %q:\n%s", n, want, out)
		}
	}
}
