// Package lock provides per-key mutual exclusion. Booking creation and
// rating updates use it to serialize read-modify-write sequences on a single
// room.
package lock

import "sync"

type Keyed struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewKeyed() *Keyed {
	return &Keyed{locks: make(map[int64]*sync.Mutex)}
}

// Entries are never evicted; the map is bounded by the number of distinct
// keys (rooms) seen by this process.
func (k *Keyed) get(key int64) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}

func (k *Keyed) Lock(key int64)   { k.get(key).Lock() }
func (k *Keyed) Unlock(key int64) { k.get(key).Unlock() }
