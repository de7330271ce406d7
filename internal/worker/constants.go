package worker

import "time"

// DefaultJobTimeout bounds a single job when the pool is built without one
const DefaultJobTimeout = time.Minute

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgQueueFull       = "Worker queue full, job dropped"
)

// Log messages - counter pruning
const (
	LogMsgCountersPruned = "Expired daily counters pruned"

	ErrMsgPruneCountersFailed = "failed to prune daily counters"
)
