package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/wagerengine/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Pool runs queued jobs on a fixed number of goroutines
type Pool struct {
	workers    int
	jobTimeout time.Duration
	jobQueue   chan Job
	wg         sync.WaitGroup
	quit       chan struct{}
	stopOnce   sync.Once
}

// NewPool creates a new worker pool. Each job gets its own context bounded
// by jobTimeout.
func NewPool(workers, queueSize int, jobTimeout time.Duration) *Pool {
	if workers < 1 {
		workers = 1
	}
	if jobTimeout <= 0 {
		jobTimeout = DefaultJobTimeout
	}
	return &Pool{
		workers:    workers,
		jobTimeout: jobTimeout,
		jobQueue:   make(chan Job, queueSize),
		quit:       make(chan struct{}),
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			return
		}
	}
}

func (p *Pool) run(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), p.jobTimeout)
	defer cancel()

	if err := job.Process(ctx); err != nil {
		// A failed job never takes the worker down
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "job", fmt.Sprintf("%T", job), "error", err)
	}
}

// Enqueue adds a job without blocking. It reports false when the queue is
// full or the pool is stopping.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case <-p.quit:
		return false
	default:
	}

	select {
	case p.jobQueue <- job:
		return true
	default:
		logger.FromContext(context.Background()).Warn(LogMsgQueueFull, "job", fmt.Sprintf("%T", job))
		return false
	}
}

// Stop stops the workers and waits for running jobs to finish. Queued jobs
// that have not started are discarded.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.quit) })
	p.wg.Wait()
}
