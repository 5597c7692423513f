package scheduling

import "sync"

// providerLocks holds a map of provider IDs to their booking mutexes.
// Check-and-insert for one provider is serialized in-process; the storage
// transaction and the unique index cover races across processes.
type providerLocks struct {
	locks map[string]*sync.Mutex
	mu    sync.Mutex
}

func newProviderLocks() *providerLocks {
	return &providerLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

// get returns the mutex for a given provider, creating one if it doesn't exist.
func (s *providerLocks) get(providerID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, exists := s.locks[providerID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[providerID] = lock
	}
	return lock
}
