// Package bigint provides the arbitrary-precision integer used by the
// persistence search.
//
// The search only ever needs a small capability set: multiply, divide in
// place by a small integer keeping the remainder, compare against a small
// integer, and raise a small base to a small power. Nat exposes exactly
// that set so the backing library never leaks into the search logic.
//
// Two backends provide the same surface:
//   - math/big (default) — pure Go, no system dependencies.
//   - GNU GMP via github.com/ncw/gmp — selected with `go build -tags gmp`,
//     requires libgmp (apt: libgmp-dev, brew: gmp).
//
// Both produce identical results; the GMP backend trades cgo call overhead
// for faster limb arithmetic on large values.
//
// A Nat is single-owner: no method is safe for concurrent use on the same
// value, and values carry their own scratch storage so the search's hot
// loop does not allocate. Workers must each create their own values.
package bigint
