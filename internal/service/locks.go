package service

import (
	"sync"
)

// salonLocks serializes review mutations per salon so that the
// check-mutate-recompute sequence runs as one unit for a given salon.
// Locks are process-local; a multi-node deployment would need the
// database's own conditional writes or an external lock.
type salonLocks struct {
	locks sync.Map // salonID -> *sync.Mutex
}

func newSalonLocks() *salonLocks {
	return &salonLocks{}
}

// Lock acquires the mutex for the given salon and returns its unlock func.
func (l *salonLocks) Lock(salonID string) func() {
	v, _ := l.locks.LoadOrStore(salonID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
