package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/wagerengine/internal/logger"
	"github.com/osse101/wagerengine/internal/metrics"
	"github.com/osse101/wagerengine/internal/repository"
)

// CounterPruneJob deletes daily play counters older than the retention
// window. Only today's counter can reject a wager, so older rows are dead
// weight once reporting no longer needs them.
type CounterPruneJob struct {
	pruner    repository.CounterPruner
	retention time.Duration
	now       func() time.Time
}

// NewCounterPruneJob keeps counters for the given retention
func NewCounterPruneJob(pruner repository.CounterPruner, retention time.Duration) *CounterPruneJob {
	return &CounterPruneJob{pruner: pruner, retention: retention, now: time.Now}
}

// Cutoff is the first play date that survives pruning. A day of slack covers
// venues whose local date trails UTC.
func (j *CounterPruneJob) Cutoff() time.Time {
	t := j.now().UTC().Add(-j.retention).AddDate(0, 0, -1)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (j *CounterPruneJob) Process(ctx context.Context) error {
	cutoff := j.Cutoff()
	deleted, err := j.pruner.PruneDailyCounters(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgPruneCountersFailed, err)
	}
	metrics.CountersPruned.Add(float64(deleted))
	logger.FromContext(ctx).Info(LogMsgCountersPruned, "before", cutoff.Format(time.DateOnly), "deleted", deleted)
	return nil
}
