// Package health implements the metric query operations and the combined
// summary aggregation on top of a provider capability.
package health

import (
	"context"
	"fmt"

	"github.com/openvitals/vitals-mcp/internal/models"
	"github.com/openvitals/vitals-mcp/internal/provider"
)

// Service issues read-only metric queries against a provider. It holds no
// per-request state, so a single Service serves concurrent requests.
type Service struct {
	provider provider.Provider
}

// NewService creates a query service on the given provider.
func NewService(p provider.Provider) *Service {
	return &Service{provider: p}
}

func quantityKind(kind models.MetricKind) provider.QuantityKind {
	if kind == models.MetricActiveEnergy {
		return provider.QuantityActiveEnergy
	}
	return provider.QuantitySteps
}

// QueryCumulative returns the summed quantity of the given kind over the
// window. An empty window sums to 0; provider failures propagate as-is.
func (s *Service) QueryCumulative(ctx context.Context, kind models.MetricKind, window models.TimeWindow) (models.CumulativeMetric, error) {
	total, err := s.provider.CumulativeSum(ctx, quantityKind(kind), window)
	if err != nil {
		return models.CumulativeMetric{}, fmt.Errorf("failed to query %s: %w", kind, err)
	}
	return models.CumulativeMetric{
		Kind:   kind,
		Window: window,
		Total:  total,
		Unit:   kind.Unit(),
	}, nil
}

// QuerySteps returns the total step count over the window.
func (s *Service) QuerySteps(ctx context.Context, window models.TimeWindow) (models.CumulativeMetric, error) {
	return s.QueryCumulative(ctx, models.MetricSteps, window)
}

// QueryActiveEnergy returns the total active energy burned over the
// window, in kcal.
func (s *Service) QueryActiveEnergy(ctx context.Context, window models.TimeWindow) (models.CumulativeMetric, error) {
	return s.QueryCumulative(ctx, models.MetricActiveEnergy, window)
}

// QueryHeartRate returns every heart-rate sample in the window, most
// recent first. An empty list is not an error.
func (s *Service) QueryHeartRate(ctx context.Context, window models.TimeWindow) ([]models.HeartRateSample, error) {
	raw, err := s.provider.Samples(ctx, provider.SampleHeartRate, window)
	if err != nil {
		return nil, fmt.Errorf("failed to query heart rate: %w", err)
	}
	samples := make([]models.HeartRateSample, 0, len(raw))
	for _, r := range raw {
		samples = append(samples, models.HeartRateSample{
			Timestamp: r.Start,
			Value:     r.Value,
			Unit:      "bpm",
		})
	}
	return samples, nil
}

// QuerySleep returns every sleep session in the window, most recent
// first, with state codes decoded under the provider's vocabulary.
func (s *Service) QuerySleep(ctx context.Context, window models.TimeWindow) ([]models.SleepSample, error) {
	raw, err := s.provider.Samples(ctx, provider.SampleSleep, window)
	if err != nil {
		return nil, fmt.Errorf("failed to query sleep: %w", err)
	}
	vocab := s.provider.SleepVocabulary()
	samples := make([]models.SleepSample, 0, len(raw))
	for _, r := range raw {
		state := models.SleepStateFromCode(r.StateCode, vocab)
		samples = append(samples, models.NewSleepSample(r.Start, r.End, state))
	}
	return samples, nil
}
