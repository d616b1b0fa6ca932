package search

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// recordLog owns the running maximum persistence and the record output
// stream. Workers read the maximum without the lock on the fast path; a
// stale read can only let a non-record through to tryPublish, never
// exclude a true record, because acceptance is re-checked under the lock.
type recordLog struct {
	mu  sync.Mutex
	max atomic.Int64
	out io.Writer
}

// newRecordLog returns a recordLog that suppresses records at or below
// floor.
func newRecordLog(out io.Writer, floor int) *recordLog {
	rl := &recordLog{out: out}
	rl.max.Store(int64(floor))
	return rl
}

// best returns the current maximum. Safe to call from any goroutine.
func (rl *recordLog) best() int {
	return int(rl.max.Load())
}

// tryPublish prints one record line and raises the maximum, provided
// persistence is still strictly greater than the maximum once the lock is
// held. Returns whether the record was accepted. number is the candidate's
// decimal digit string.
func (rl *recordLog) tryPublish(persistence int, number string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if int64(persistence) <= rl.max.Load() {
		return false
	}
	fmt.Fprintf(rl.out, "%02d:  %s\n", persistence, number)
	rl.max.Store(int64(persistence))
	return true
}
