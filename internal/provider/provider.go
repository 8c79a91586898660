// Package provider defines the health-data store boundary consumed by the
// query service, plus a YAML-archive-backed implementation for local use.
package provider

import (
	"context"
	"errors"
	"time"

	"github.com/openvitals/vitals-mcp/internal/models"
)

// QuantityKind identifies a summable quantity type in the data store.
type QuantityKind string

const (
	QuantitySteps        QuantityKind = "step_count"
	QuantityActiveEnergy QuantityKind = "active_energy_burned"
)

// SampleKind identifies a sample-list type in the data store.
type SampleKind string

const (
	SampleHeartRate SampleKind = "heart_rate"
	SampleSleep     SampleKind = "sleep_analysis"
)

// RawSample is a single reading as the store records it. Quantity samples
// carry Value; sleep samples carry StateCode in the store's vocabulary.
type RawSample struct {
	Start     time.Time
	End       time.Time
	Value     float64
	StateCode int
}

// ErrNotAuthorized is returned by queries made before a successful
// authorization grant.
var ErrNotAuthorized = errors.New("health data access not authorized")

// Provider is the read-only capability the query service is built on.
// Implementations must be safe for concurrent queries; the summary
// aggregator issues four at once.
type Provider interface {
	// Authorize requests access to the underlying store. It is called
	// once at startup; queries made after a failed grant return
	// ErrNotAuthorized.
	Authorize(ctx context.Context) error

	// CumulativeSum returns the sum of all quantity samples of the given
	// kind that start within the window. A window with no samples sums
	// to 0 and is not an error.
	CumulativeSum(ctx context.Context, kind QuantityKind, window models.TimeWindow) (float64, error)

	// Samples returns every sample of the given kind starting within the
	// window, sorted descending by start time, with no upper bound.
	Samples(ctx context.Context, kind SampleKind, window models.TimeWindow) ([]RawSample, error)

	// SleepVocabulary reports which sleep-state code vocabulary the
	// store's sleep samples were recorded under.
	SleepVocabulary() models.SleepVocabulary
}
