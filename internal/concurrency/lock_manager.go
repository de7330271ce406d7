package concurrency

import (
	"sync"
)

type keyLock struct {
	mu   sync.Mutex
	refs int
}

// LockManager hands out one mutex per key. An entry lives only while some
// caller holds or waits for it, so arbitrary request-supplied keys are safe.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyLock)}
}

// Lock acquires the mutex for key and returns its unlock function
func (lm *LockManager) Lock(key string) (unlock func()) {
	lm.mu.Lock()
	l, ok := lm.locks[key]
	if !ok {
		l = &keyLock{}
		lm.locks[key] = l
	}
	l.refs++
	lm.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		lm.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(lm.locks, key)
		}
		lm.mu.Unlock()
	}
}

// Len reports how many keys are currently held or awaited
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
