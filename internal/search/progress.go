package search

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// Progress holds live counters updated by search workers. All fields are
// atomic so they can be written from worker goroutines and read by the
// caller without locks.
type Progress struct {
	DigitCountsDone atomic.Int64 // digit counts fully searched
	Candidates      atomic.Int64 // candidates evaluated
	Records         atomic.Int64 // records accepted and printed
}

// blockTracker groups digit counts into contiguous fixed-size blocks and
// emits one diagnostic line per block when its last digit count finishes.
// Each block holds an atomic countdown; exactly one worker observes the
// transition to zero, so no lock is needed for the trigger itself.
type blockTracker struct {
	blockSize int
	maxDigits int
	remaining []atomic.Int64
	mu        sync.Mutex // serialises writes to out
	out       io.Writer
}

// newBlockTracker covers digit counts 2 through maxDigits, with digit
// count d belonging to block (d-1)/blockSize.
func newBlockTracker(maxDigits, blockSize int, out io.Writer) *blockTracker {
	bt := &blockTracker{
		blockSize: blockSize,
		maxDigits: maxDigits,
		remaining: make([]atomic.Int64, (maxDigits-1)/blockSize+1),
		out:       out,
	}
	for d := 2; d <= maxDigits; d++ {
		bt.remaining[(d-1)/blockSize].Add(1)
	}
	return bt
}

// finished records the completion of one digit count. The worker that
// drives a block's countdown to zero reports the block, bounded above by
// maxDigits for the final partial block.
func (bt *blockTracker) finished(digitCount int) {
	i := (digitCount - 1) / bt.blockSize
	if bt.remaining[i].Add(-1) != 0 {
		return
	}
	bound := (i + 1) * bt.blockSize
	if bound > bt.maxDigits {
		bound = bt.maxDigits
	}
	bt.mu.Lock()
	fmt.Fprintf(bt.out, "Finished searching at %d digits\n", bound)
	bt.mu.Unlock()
}
