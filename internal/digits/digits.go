// Package digits implements digit-product reduction and multiplicative
// persistence over arbitrary-precision integers.
//
// Reduction does more than take a digit product: it rebuilds the product as
// the smallest number with the same digit product. Every decimal digit
// factors into the primes 2, 3, 5, and 7, so a digit product is always of
// the form 2^a * 3^b * 5^c * 7^d and the rebuilt value equals the plain
// digit product numerically. The search exploits the canonical form to skip
// over equivalent numbers; the persistence loop reuses it as the ordinary
// reduction step.
package digits

import "github.com/jekstrand/persistence/internal/bigint"

// Reducer holds the scratch state for reduction. It is not safe for
// concurrent use; each worker owns one.
type Reducer struct {
	hist [10]int
	pow  *bigint.Nat
}

// NewReducer returns a ready-to-use Reducer.
func NewReducer() *Reducer {
	return &Reducer{pow: bigint.New()}
}

// Reduce replaces n with the smallest number whose digits multiply to the
// same value as the digits of n, or with 0 if any digit of n is 0. The
// original value of n is consumed.
func (r *Reducer) Reduce(n *bigint.Nat) {
	if n.IsZero() {
		return
	}

	for i := range r.hist {
		r.hist[i] = 0
	}
	for n.CmpUint64(0) > 0 {
		d := n.QuoRemUint64(10)
		if d == 0 {
			n.SetUint64(0)
			return
		}
		r.hist[d]++
	}

	// Fold composite digits into their prime factors:
	// 4 = 2*2, 6 = 2*3, 8 = 2*2*2, 9 = 3*3.
	r.hist[2] += r.hist[4]*2 + r.hist[6] + r.hist[8]*3
	r.hist[3] += r.hist[6] + r.hist[9]*2

	n.PowUint64(2, uint64(r.hist[2]))
	for _, p := range [3]uint64{3, 5, 7} {
		if c := r.hist[p]; c > 0 {
			r.pow.PowUint64(p, uint64(c))
			n.Mul(r.pow)
		}
	}
}

// Persistence returns the number of reductions needed to bring n down to a
// single decimal digit: 0 if n is already a single digit. n is consumed.
//
// Termination: for any n >= 10 with no zero digit, the digit product is
// strictly less than n, and a zero digit drops the value straight to 0.
func (r *Reducer) Persistence(n *bigint.Nat) int {
	count := 0
	for n.CmpUint64(9) > 0 {
		r.Reduce(n)
		count++
	}
	return count
}
