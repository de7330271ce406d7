package bootstrap

import (
	"log/slog"

	"github.com/osse101/wagerengine/internal/config"
	"github.com/osse101/wagerengine/internal/scheduler"
	"github.com/osse101/wagerengine/internal/worker"
)

// Housekeeping owns the background pool and its schedule
type Housekeeping struct {
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// StartHousekeeping schedules counter pruning, with a first run at startup
func StartHousekeeping(cfg *config.Config, repos *Repositories) *Housekeeping {
	pool := worker.NewPool(HousekeepingWorkers, HousekeepingQueueSize, cfg.TxTimeout*HousekeepingTimeoutFactor)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.HousekeepingInterval, worker.NewCounterPruneJob(repos.Counters, cfg.CounterRetention), true)

	slog.Info(LogMsgHousekeepingStarted,
		"interval", cfg.HousekeepingInterval,
		"counter_retention", cfg.CounterRetention)
	return &Housekeeping{Pool: pool, Scheduler: sched}
}

// Stop halts the schedule and waits for running jobs
func (h *Housekeeping) Stop() {
	h.Scheduler.Stop()
	h.Pool.Stop()
}
