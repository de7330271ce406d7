package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/wagerengine/internal/worker"
)

// Scheduler enqueues jobs on a worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule enqueues job every interval until Stop. With runNow the first
// run is enqueued immediately. A tick that finds the queue full is skipped.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job, runNow bool) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if runNow {
			s.workerPool.Enqueue(job)
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.workerPool.Enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. Jobs already handed to the pool are
// unaffected.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
