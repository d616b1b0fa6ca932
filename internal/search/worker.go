package search

import (
	"strings"

	"github.com/jekstrand/persistence/internal/bigint"
	"github.com/jekstrand/persistence/internal/digits"
)

// worker holds the per-goroutine state of the search. The big-integer
// buffers are single-owner; nothing here is shared except the record log
// and the progress counters, which synchronise internally.
type worker struct {
	records  *recordLog
	progress *Progress
	red      *digits.Reducer
	num      *bigint.Nat
	pow      *bigint.Nat
}

func newWorker(records *recordLog, progress *Progress) *worker {
	return &worker{
		records:  records,
		progress: progress,
		red:      digits.NewReducer(),
		num:      bigint.New(),
		pow:      bigint.New(),
	}
}

// searchDigitCount evaluates every canonical candidate with exactly
// digitCount digits.
func (w *worker) searchDigitCount(digitCount int) {
	for i := range prefixes {
		p := &prefixes[i]
		if digitCount < p.digits {
			continue
		}
		rest := digitCount - p.digits

		if p.prod&1 == 1 {
			// An odd prefix product can combine with 5s. Such numbers
			// never contain an 8: 8*5 is a multiple of 10, and the digit
			// product of any multiple of 10 is zero. Strict inequality on
			// num79s keeps at least one 5; the no-5 cases are the
			// {7,8,9} family below.
			for num79s := 0; num79s < rest; num79s++ {
				num5s := rest - num79s
				for num9s := 0; num9s <= num79s; num9s++ {
					w.evaluate(p, num5s, num79s-num9s, 0, num9s)
				}
			}
		}

		for num89s := 0; num89s <= rest; num89s++ {
			num7s := rest - num89s
			for num9s := 0; num9s <= num89s; num9s++ {
				w.evaluate(p, 0, num7s, num89s-num9s, num9s)
			}
		}
	}
}

// evaluate computes the persistence of the candidate whose digits are the
// prefix followed by the given runs of 5s, 7s, 8s, and 9s, and offers it
// to the record log. The candidate's value stands in for the first
// reduction of the number it canonicalises, so the reported persistence is
// one more than the evaluator's count.
func (w *worker) evaluate(p *prefix, num5s, num7s, num8s, num9s int) {
	w.num.SetUint64(p.prod)
	for _, run := range [4]struct {
		base  uint64
		count int
	}{{5, num5s}, {7, num7s}, {8, num8s}, {9, num9s}} {
		if run.count > 0 {
			w.pow.PowUint64(run.base, uint64(run.count))
			w.num.Mul(w.pow)
		}
	}

	persistence := 1 + w.red.Persistence(w.num)
	w.progress.Candidates.Add(1)

	// Unsynchronised fast path; tryPublish re-checks under the lock.
	if persistence <= w.records.best() {
		return
	}
	number := p.str +
		strings.Repeat("5", num5s) +
		strings.Repeat("7", num7s) +
		strings.Repeat("8", num8s) +
		strings.Repeat("9", num9s)
	if w.records.tryPublish(persistence, number) {
		w.progress.Records.Add(1)
	}
}
