//go:build !gmp

package bigint

import "math/big"

// Nat is an arbitrary-precision non-negative integer backed by math/big.
type Nat struct {
	v *big.Int
	t *big.Int // scratch operand (divisor, small multiplicand, pow base)
	r *big.Int // scratch remainder / exponent
}

// New returns a Nat with value 0.
func New() *Nat {
	return &Nat{v: new(big.Int), t: new(big.Int), r: new(big.Int)}
}

// SetUint64 sets z to u and returns z.
func (z *Nat) SetUint64(u uint64) *Nat {
	z.v.SetUint64(u)
	return z
}

// Set sets z to x and returns z.
func (z *Nat) Set(x *Nat) *Nat {
	z.v.Set(x.v)
	return z
}

// Mul sets z to z*x and returns z.
func (z *Nat) Mul(x *Nat) *Nat {
	z.v.Mul(z.v, x.v)
	return z
}

// MulUint64 sets z to z*u and returns z.
func (z *Nat) MulUint64(u uint64) *Nat {
	z.t.SetUint64(u)
	z.v.Mul(z.v, z.t)
	return z
}

// PowUint64 sets z to base**exp and returns z. The previous value of z is
// discarded.
func (z *Nat) PowUint64(base, exp uint64) *Nat {
	z.t.SetUint64(base)
	z.r.SetUint64(exp)
	z.v.Exp(z.t, z.r, nil)
	return z
}

// QuoRemUint64 sets z to z/d (truncated) and returns the remainder z%d.
// d must be non-zero.
func (z *Nat) QuoRemUint64(d uint64) uint64 {
	z.t.SetUint64(d)
	z.v.QuoRem(z.v, z.t, z.r)
	return z.r.Uint64()
}

// CmpUint64 compares z to u and returns -1, 0, or +1.
func (z *Nat) CmpUint64(u uint64) int {
	z.t.SetUint64(u)
	return z.v.Cmp(z.t)
}

// IsZero reports whether z is 0.
func (z *Nat) IsZero() bool {
	return z.v.Sign() == 0
}

// Swap exchanges the values of z and x. Scratch storage stays put.
func (z *Nat) Swap(x *Nat) {
	z.v, x.v = x.v, z.v
}

// String returns the decimal representation of z.
func (z *Nat) String() string {
	return z.v.String()
}
