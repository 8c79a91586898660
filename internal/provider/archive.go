package provider

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync/atomic"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/openvitals/vitals-mcp/internal/models"
)

// archiveFile is the on-disk YAML shape of a recorded health-data archive.
type archiveFile struct {
	Vocabulary   string           `yaml:"vocabulary"`
	Steps        []quantityRecord `yaml:"steps"`
	ActiveEnergy []quantityRecord `yaml:"active_energy"`
	HeartRate    []heartRecord    `yaml:"heart_rate"`
	Sleep        []sleepRecord    `yaml:"sleep"`
}

type quantityRecord struct {
	Start time.Time `yaml:"start"`
	End   time.Time `yaml:"end"`
	Value float64   `yaml:"value"`
}

type heartRecord struct {
	Timestamp time.Time `yaml:"ts"`
	BPM       float64   `yaml:"bpm"`
}

type sleepRecord struct {
	Start time.Time `yaml:"start"`
	End   time.Time `yaml:"end"`
	State int       `yaml:"state"`
}

// Archive is a Provider backed by a YAML file of recorded samples. The
// data is loaded once and never mutated afterwards, so concurrent queries
// need no locking.
type Archive struct {
	vocabulary models.SleepVocabulary
	quantities map[QuantityKind][]RawSample
	samples    map[SampleKind][]RawSample
	authorized atomic.Bool
}

// LoadArchive reads and validates a health-data archive file.
func LoadArchive(path string) (*Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive file: %w", err)
	}
	return ParseArchive(data)
}

// ParseArchive builds an Archive from raw YAML.
func ParseArchive(data []byte) (*Archive, error) {
	var file archiveFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse archive YAML: %w", err)
	}

	vocab := models.SleepVocabulary(file.Vocabulary)
	switch vocab {
	case models.VocabularyLegacy, models.VocabularyStaged:
	case "":
		vocab = models.VocabularyStaged
	default:
		return nil, fmt.Errorf("unknown sleep vocabulary %q", file.Vocabulary)
	}

	a := &Archive{
		vocabulary: vocab,
		quantities: map[QuantityKind][]RawSample{
			QuantitySteps:        quantitySamples(file.Steps),
			QuantityActiveEnergy: quantitySamples(file.ActiveEnergy),
		},
		samples: map[SampleKind][]RawSample{
			SampleHeartRate: heartSamples(file.HeartRate),
			SampleSleep:     sleepSamples(file.Sleep),
		},
	}

	// Queries promise descending start order; sort once at load.
	for _, list := range a.samples {
		sortDescending(list)
	}
	return a, nil
}

func quantitySamples(records []quantityRecord) []RawSample {
	out := make([]RawSample, 0, len(records))
	for _, r := range records {
		out = append(out, RawSample{Start: r.Start, End: r.End, Value: r.Value})
	}
	return out
}

func heartSamples(records []heartRecord) []RawSample {
	out := make([]RawSample, 0, len(records))
	for _, r := range records {
		out = append(out, RawSample{Start: r.Timestamp, End: r.Timestamp, Value: r.BPM})
	}
	return out
}

func sleepSamples(records []sleepRecord) []RawSample {
	out := make([]RawSample, 0, len(records))
	for _, r := range records {
		out = append(out, RawSample{Start: r.Start, End: r.End, StateCode: r.State})
	}
	return out
}

func sortDescending(list []RawSample) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Start.After(list[j].Start)
	})
}

// Authorize grants access to the archive. Local archives have nothing to
// deny, so the grant always succeeds once the file has loaded.
func (a *Archive) Authorize(ctx context.Context) error {
	a.authorized.Store(true)
	return nil
}

// CumulativeSum sums all quantity samples starting within the window.
func (a *Archive) CumulativeSum(ctx context.Context, kind QuantityKind, window models.TimeWindow) (float64, error) {
	if !a.authorized.Load() {
		return 0, ErrNotAuthorized
	}
	list, ok := a.quantities[kind]
	if !ok {
		return 0, fmt.Errorf("unsupported quantity kind %q", kind)
	}
	var total float64
	for _, s := range list {
		if window.ContainsStart(s.Start) {
			total += s.Value
		}
	}
	return total, nil
}

// Samples returns the samples of the given kind starting within the
// window, in descending start order.
func (a *Archive) Samples(ctx context.Context, kind SampleKind, window models.TimeWindow) ([]RawSample, error) {
	if !a.authorized.Load() {
		return nil, ErrNotAuthorized
	}
	list, ok := a.samples[kind]
	if !ok {
		return nil, fmt.Errorf("unsupported sample kind %q", kind)
	}
	var out []RawSample
	for _, s := range list {
		if window.ContainsStart(s.Start) {
			out = append(out, s)
		}
	}
	return out, nil
}

// SleepVocabulary reports the vocabulary declared in the archive file.
func (a *Archive) SleepVocabulary() models.SleepVocabulary {
	return a.vocabulary
}

// Counts returns per-kind sample counts for diagnostics.
func (a *Archive) Counts() map[string]int {
	return map[string]int{
		"steps":         len(a.quantities[QuantitySteps]),
		"active_energy": len(a.quantities[QuantityActiveEnergy]),
		"heart_rate":    len(a.samples[SampleHeartRate]),
		"sleep":         len(a.samples[SampleSleep]),
	}
}
