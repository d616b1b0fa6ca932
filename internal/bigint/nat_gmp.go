//go:build gmp

package bigint

import "github.com/ncw/gmp"

// Nat is an arbitrary-precision non-negative integer backed by GNU GMP.
// The method set matches the math/big implementation in nat_big.go exactly;
// see that file for per-method documentation.
type Nat struct {
	v *gmp.Int
	t *gmp.Int
	r *gmp.Int
}

// New returns a Nat with value 0.
func New() *Nat {
	return &Nat{v: gmp.NewInt(0), t: gmp.NewInt(0), r: gmp.NewInt(0)}
}

func (z *Nat) SetUint64(u uint64) *Nat {
	z.v.SetInt64(int64(u))
	return z
}

func (z *Nat) Set(x *Nat) *Nat {
	z.v.Set(x.v)
	return z
}

func (z *Nat) Mul(x *Nat) *Nat {
	z.v.Mul(z.v, x.v)
	return z
}

func (z *Nat) MulUint64(u uint64) *Nat {
	if u <= 1<<32-1 {
		z.v.MulUint32(z.v, uint32(u))
		return z
	}
	z.t.SetInt64(int64(u))
	z.v.Mul(z.v, z.t)
	return z
}

func (z *Nat) PowUint64(base, exp uint64) *Nat {
	z.t.SetInt64(int64(base))
	z.r.SetInt64(int64(exp))
	z.v.Exp(z.t, z.r, nil)
	return z
}

func (z *Nat) QuoRemUint64(d uint64) uint64 {
	z.t.SetInt64(int64(d))
	z.v.QuoRem(z.v, z.t, z.r)
	return uint64(z.r.Int64())
}

func (z *Nat) CmpUint64(u uint64) int {
	z.t.SetInt64(int64(u))
	return z.v.Cmp(z.t)
}

func (z *Nat) IsZero() bool {
	return z.v.Sign() == 0
}

func (z *Nat) Swap(x *Nat) {
	z.v, x.v = x.v, z.v
}

func (z *Nat) String() string {
	return z.v.String()
}
