package service

import "sync"

// sessionLocks hands out one mutex per key. An entry lives only while some
// goroutine holds or waits for it.
type sessionLocks struct {
	mu      sync.Mutex
	entries map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func (l *sessionLocks) acquire(key string) func() {
	l.mu.Lock()
	if l.entries == nil {
		l.entries = map[string]*sessionLock{}
	}
	entry, ok := l.entries[key]
	if !ok {
		entry = &sessionLock{}
		l.entries[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.entries, key)
		}
		l.mu.Unlock()
	}
}

func (l *sessionLocks) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
