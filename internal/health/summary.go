package health

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/openvitals/vitals-mcp/internal/models"
)

// Summary runs the four metric queries concurrently and joins them into
// one CombinedSummary. The join is all-or-nothing: if any sub-query
// fails, the whole call fails with the first error observed and the
// sibling results are discarded. Which error wins when several fail at
// once is not defined. In-flight siblings are not cancelled beyond the
// group context; their results are simply dropped.
func (s *Service) Summary(ctx context.Context, window models.TimeWindow) (models.CombinedSummary, error) {
	var (
		steps     models.CumulativeMetric
		energy    models.CumulativeMetric
		heartRate []models.HeartRateSample
		sleep     []models.SleepSample
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		steps, err = s.QuerySteps(gctx, window)
		return err
	})
	g.Go(func() error {
		var err error
		energy, err = s.QueryActiveEnergy(gctx, window)
		return err
	})
	g.Go(func() error {
		var err error
		heartRate, err = s.QueryHeartRate(gctx, window)
		return err
	})
	g.Go(func() error {
		var err error
		sleep, err = s.QuerySleep(gctx, window)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.CombinedSummary{}, err
	}

	return models.CombinedSummary{
		Window:       window,
		Steps:        steps,
		ActiveEnergy: energy,
		HeartRate:    heartRate,
		Sleep:        sleep,
	}, nil
}
