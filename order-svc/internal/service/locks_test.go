package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionLocks_ReleasedEntriesAreDropped(t *testing.T) {
	var locks sessionLocks

	for _, key := range []string{"c-1", "c-2", "c-1"} {
		unlock := locks.acquire(key)
		assert.Equal(t, 1, locks.len())
		unlock()
	}
	assert.Zero(t, locks.len())
}

func TestSessionLocks_SameKeyIsExclusive(t *testing.T) {
	var locks sessionLocks
	var wg sync.WaitGroup
	active, maxActive := 0, 0
	var counterMu sync.Mutex

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.acquire("c-1")
			defer unlock()

			counterMu.Lock()
			active++
			if active > maxActive {
				maxActive = active
			}
			counterMu.Unlock()

			time.Sleep(time.Millisecond)

			counterMu.Lock()
			active--
			counterMu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxActive)
	assert.Zero(t, locks.len())
}

func TestSessionLocks_DifferentKeysDoNotBlock(t *testing.T) {
	var locks sessionLocks
	unlockFirst := locks.acquire("c-1")
	defer unlockFirst()

	done := make(chan struct{})
	go func() {
		locks.acquire("c-2")()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on c-2 waited for c-1")
	}
}
