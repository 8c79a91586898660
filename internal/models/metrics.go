package models

import (
	"strings"
	"time"
)

// TimeWindow is the time range a query is restricted to. Both endpoints
// are midnight UTC instants derived from calendar dates. start <= end is
// deliberately not enforced; an inverted window simply matches nothing.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// ContainsStart reports whether a sample starting at t falls inside the
// window under the provider's strict-start rule: the sample must start
// at-or-after the window start and before the window end.
func (w TimeWindow) ContainsStart(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// MetricKind identifies a cumulative quantity type.
type MetricKind int

const (
	MetricSteps MetricKind = iota
	MetricActiveEnergy
)

func (k MetricKind) String() string {
	switch k {
	case MetricSteps:
		return "Steps"
	case MetricActiveEnergy:
		return "Active Energy"
	default:
		return "Unknown"
	}
}

// Unit returns the display unit for the metric kind.
func (k MetricKind) Unit() string {
	switch k {
	case MetricActiveEnergy:
		return "kcal"
	default:
		return "steps"
	}
}

// CumulativeMetric is a quantity summed over a window.
type CumulativeMetric struct {
	Kind   MetricKind
	Window TimeWindow
	Total  float64
	Unit   string
}

// HeartRateSample is a single heart-rate reading.
type HeartRateSample struct {
	Timestamp time.Time
	Value     float64
	Unit      string
}

// SleepState classifies a sleep analysis sample.
type SleepState int

const (
	SleepUnknown SleepState = iota
	SleepInBed
	SleepAsleep
	SleepAwake
	SleepCore
	SleepDeep
	SleepREM
)

func (s SleepState) String() string {
	switch s {
	case SleepInBed:
		return "In Bed"
	case SleepAsleep:
		return "Asleep"
	case SleepAwake:
		return "Awake"
	case SleepCore:
		return "Core Sleep"
	case SleepDeep:
		return "Deep Sleep"
	case SleepREM:
		return "REM Sleep"
	default:
		return "Unknown"
	}
}

// IsSleep reports whether the state counts toward total sleep time.
// The rule is textual on purpose: any state whose name contains "Sleep"
// or "Asleep" counts, which includes Core/Deep/REM/Asleep and excludes
// Awake, In Bed and Unknown.
func (s SleepState) IsSleep() bool {
	name := s.String()
	return strings.Contains(name, "Sleep") || strings.Contains(name, "Asleep")
}

// SleepVocabulary describes which sleep-state code vocabulary a data
// source records with. Staged sources distinguish Core/Deep/REM stages;
// legacy sources only know Asleep, Awake and In Bed.
type SleepVocabulary string

const (
	VocabularyLegacy SleepVocabulary = "legacy"
	VocabularyStaged SleepVocabulary = "staged"
)

// SleepStateFromCode maps a raw integer state code to a SleepState using
// the vocabulary the data source was recorded under. Codes outside the
// vocabulary map to SleepUnknown so historical data never misclassifies.
func SleepStateFromCode(code int, vocab SleepVocabulary) SleepState {
	switch code {
	case 0:
		return SleepInBed
	case 1:
		return SleepAsleep
	case 2:
		return SleepAwake
	}
	if vocab == VocabularyStaged {
		switch code {
		case 3:
			return SleepCore
		case 4:
			return SleepDeep
		case 5:
			return SleepREM
		}
	}
	return SleepUnknown
}

// SleepSample is one sleep analysis interval.
type SleepSample struct {
	Start         time.Time
	End           time.Time
	DurationHours float64
	State         SleepState
}

// NewSleepSample builds a SleepSample with the duration derived from the
// interval endpoints.
func NewSleepSample(start, end time.Time, state SleepState) SleepSample {
	return SleepSample{
		Start:         start,
		End:           end,
		DurationHours: end.Sub(start).Hours(),
		State:         state,
	}
}

// CombinedSummary joins the four metric results for one window.
type CombinedSummary struct {
	Window       TimeWindow
	Steps        CumulativeMetric
	ActiveEnergy CumulativeMetric
	HeartRate    []HeartRateSample
	Sleep        []SleepSample
}
