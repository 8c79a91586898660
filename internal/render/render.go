// Package render turns typed query results into the canonical text
// reports. Every function here is pure: no I/O, no clock, byte-identical
// output for identical input.
package render

import (
	"fmt"
	"strings"

	"github.com/openvitals/vitals-mcp/internal/models"
)

const (
	// maxListedSamples caps the per-sample listing in the heart-rate
	// report; the input list is already sorted most recent first, so the
	// first N entries are the N most recent readings.
	maxListedSamples = 10

	periodLayout = "Jan 2, 2006"
	stampLayout  = "2006-01-02 15:04"
)

// Cumulative renders the standalone report for one summed metric.
func Cumulative(m models.CumulativeMetric) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s SUMMARY\n", strings.ToUpper(m.Kind.String()))
	fmt.Fprintf(&b, "Period: %s to %s\n", m.Window.Start.Format(periodLayout), m.Window.End.Format(periodLayout))
	fmt.Fprintf(&b, "Total: %.2f %s\n", m.Total, m.Unit)
	return b.String()
}

// HeartRate renders the heart-rate sample report: count, derived
// statistics and the most recent samples.
func HeartRate(samples []models.HeartRateSample) string {
	var b strings.Builder
	b.WriteString("HEART RATE SUMMARY\n")
	fmt.Fprintf(&b, "Samples: %d\n", len(samples))

	if len(samples) == 0 {
		b.WriteString("No heart rate data recorded for this period.\n")
		return b.String()
	}

	min, max, avg := heartRateStats(samples)
	fmt.Fprintf(&b, "Average: %.1f bpm\n", avg)
	fmt.Fprintf(&b, "Min: %.1f bpm\n", min)
	fmt.Fprintf(&b, "Max: %.1f bpm\n", max)

	b.WriteString("\nMost recent samples:\n")
	listed := samples
	if len(listed) > maxListedSamples {
		listed = listed[:maxListedSamples]
	}
	for _, s := range listed {
		fmt.Fprintf(&b, "  %s: %.1f %s\n", s.Timestamp.Format(stampLayout), s.Value, s.Unit)
	}
	if extra := len(samples) - maxListedSamples; extra > 0 {
		fmt.Fprintf(&b, "  ... and %d more samples\n", extra)
	}
	return b.String()
}

func heartRateStats(samples []models.HeartRateSample) (min, max, avg float64) {
	min = samples[0].Value
	max = samples[0].Value
	var sum float64
	for _, s := range samples {
		if s.Value < min {
			min = s.Value
		}
		if s.Value > max {
			max = s.Value
		}
		sum += s.Value
	}
	return min, max, sum / float64(len(samples))
}

// Sleep renders the sleep session report with the total sleeping hours
// and every session listed.
func Sleep(samples []models.SleepSample) string {
	var b strings.Builder
	b.WriteString("SLEEP SUMMARY\n")
	fmt.Fprintf(&b, "Sessions: %d\n", len(samples))

	if len(samples) == 0 {
		b.WriteString("No sleep data recorded for this period.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Total sleep: %.2f hours\n", totalSleepHours(samples))
	b.WriteString("\n")
	for _, s := range samples {
		fmt.Fprintf(&b, "  %s: %s - %s (%.2f hours)\n",
			s.State, s.Start.Format(stampLayout), s.End.Format(stampLayout), s.DurationHours)
	}
	return b.String()
}

func totalSleepHours(samples []models.SleepSample) float64 {
	var total float64
	for _, s := range samples {
		if s.State.IsSleep() {
			total += s.DurationHours
		}
	}
	return total
}

// Combined renders the composite report. Sections mirror the standalone
// reports but without per-sample listings. Steps are shown as a whole
// number here while the standalone steps report uses two decimals; that
// asymmetry is part of the output contract.
func Combined(s models.CombinedSummary) string {
	var b strings.Builder
	b.WriteString("HEALTH SUMMARY\n")
	fmt.Fprintf(&b, "Period: %s to %s\n", s.Window.Start.Format(periodLayout), s.Window.End.Format(periodLayout))

	b.WriteString("\nSTEPS\n")
	fmt.Fprintf(&b, "Total: %.0f %s\n", s.Steps.Total, s.Steps.Unit)

	b.WriteString("\nACTIVE ENERGY\n")
	fmt.Fprintf(&b, "Total: %.2f %s\n", s.ActiveEnergy.Total, s.ActiveEnergy.Unit)

	b.WriteString("\nHEART RATE\n")
	if len(s.HeartRate) == 0 {
		b.WriteString("No heart rate data recorded.\n")
	} else {
		_, _, avg := heartRateStats(s.HeartRate)
		fmt.Fprintf(&b, "Average: %.1f bpm (%d samples)\n", avg, len(s.HeartRate))
	}

	b.WriteString("\nSLEEP\n")
	if len(s.Sleep) == 0 {
		b.WriteString("No sleep data recorded.\n")
	} else {
		fmt.Fprintf(&b, "Total sleep: %.2f hours (%d sessions)\n", totalSleepHours(s.Sleep), len(s.Sleep))
	}
	return b.String()
}
