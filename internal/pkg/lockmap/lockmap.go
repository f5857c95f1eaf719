package lockmap

import (
	"sync"

	"github.com/google/uuid"
)

// LockMap hands out one mutex per key so that check-and-commit sequences for
// the same resource serialize while different resources proceed in parallel.
// Entries are never evicted; the key space is bounded by the PC inventory.
type LockMap struct {
	locks sync.Map // uuid.UUID -> *sync.Mutex
}

func New() *LockMap {
	return &LockMap{}
}

// Acquire blocks until the key's mutex is held and returns the release func.
func (l *LockMap) Acquire(key uuid.UUID) func() {
	v, _ := l.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
