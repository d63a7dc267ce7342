// Package debounce filters bursts of events from bouncing switches.
package debounce

import (
	"sync"
	"time"
)

/*
New returns a gate that reports true for the first call and then false until
wait has passed since the last accepted call. It is safe for concurrent use,
so several inputs can share one gate.
*/
func New(wait time.Duration) func() bool {
	var (
		mu   sync.Mutex
		last time.Time
	)
	return func() bool {
		mu.Lock()
		defer mu.Unlock()
		now := time.Now()
		if !last.IsZero() && now.Sub(last) <= wait {
			return false
		}
		last = now
		return true
	}
}
