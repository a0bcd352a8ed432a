// SPDX-License-Identifier: MIT

package decmath

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cockroachdb/apd/v3"
)

var (
	// ErrOutOfDomain indicates an argument outside the function's real domain.
	ErrOutOfDomain = errors.New("decmath: argument out of domain")

	// ErrTooLarge indicates an argument too large to reduce modulo 2π.
	ErrTooLarge = errors.New("decmath: argument too large to reduce")

	// ErrNoConvergence indicates that a series did not converge within maxTerms.
	ErrNoConvergence = errors.New("decmath: series did not converge")
)

const (
	// guardDigits is added to the caller's precision for every internal sum.
	guardDigits = 5

	// maxTerms bounds every series loop.
	maxTerms = 100000

	// MaxReduceExponent is the largest adjusted exponent of a Sin/Cos
	// argument. Reduction carries one extra digit per decade of the argument.
	MaxReduceExponent = 1000

	// atanReduceLimit is the largest |x| handed to the raw atan series.
	atanReduceLimit = "0.1"
)

var (
	decOne  = apd.New(1, 0)
	decTwo  = apd.New(2, 0)
	decFour = apd.New(4, 0)

	// piCache maps a precision (uint32) to π at that precision.
	// Stored values are never mutated.
	piCache sync.Map
)

// decmathErrorf tags err with the kernel name.
func decmathErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// widen returns a copy of c whose precision is raised by extra digits.
func widen(c *apd.Context, extra uint32) *apd.Context {
	w := *c
	w.Precision = c.Precision + extra

	return &w
}

// adjusted returns the exponent of the most significant digit of d.
func adjusted(d *apd.Decimal) int64 {
	return int64(d.Exponent) + d.NumDigits() - 1
}

// negligible reports whether adding term can no longer change sum at prec digits.
func negligible(term, sum *apd.Decimal, prec uint32) bool {
	if term.IsZero() {
		return true
	}
	if sum.IsZero() {
		return false
	}

	return adjusted(term) < adjusted(sum)-int64(prec)-1
}

// Pi sets d to π rounded to c's precision.
//
// Machin: π = 16·atan(1/5) − 4·atan(1/239). Both arguments are small enough
// for the raw series, so no reduction (and no recursion into Pi) happens.
func Pi(c *apd.Context, d *apd.Decimal) error {
	if v, ok := piCache.Load(c.Precision); ok {
		d.Set(v.(*apd.Decimal))

		return nil
	}

	w := widen(c, guardDigits)
	ed := apd.MakeErrDecimal(w)

	a := ed.Quo(new(apd.Decimal), decOne, apd.New(5, 0))
	b := ed.Quo(new(apd.Decimal), decOne, apd.New(239, 0))
	if err := ed.Err(); err != nil {
		return decmathErrorf("Pi", err)
	}

	ta, err := atanSeries(w, a)
	if err != nil {
		return decmathErrorf("Pi", err)
	}
	tb, err := atanSeries(w, b)
	if err != nil {
		return decmathErrorf("Pi", err)
	}

	pi := new(apd.Decimal)
	ed.Mul(ta, ta, apd.New(16, 0))
	ed.Mul(tb, tb, decFour)
	ed.Sub(pi, ta, tb)
	if err = ed.Err(); err != nil {
		return decmathErrorf("Pi", err)
	}
	if _, err = c.Round(pi, pi); err != nil {
		return decmathErrorf("Pi", err)
	}

	piCache.Store(c.Precision, pi)
	d.Set(pi)

	return nil
}

// reduce folds x into [−π, π] at working precision w.
// The reduction runs with extra digits proportional to the magnitude of x
// so the remainder keeps w.Precision significant digits; beyond
// MaxReduceExponent it fails with ErrTooLarge.
func reduce(w *apd.Context, x *apd.Decimal) (*apd.Decimal, error) {
	pi := new(apd.Decimal)
	if err := Pi(w, pi); err != nil {
		return nil, err
	}

	ax := new(apd.Decimal).Abs(x)
	if ax.Cmp(pi) <= 0 {
		return new(apd.Decimal).Set(x), nil
	}

	if adjusted(ax) > MaxReduceExponent {
		return nil, fmt.Errorf("%w: |x| = %s", ErrTooLarge, ax)
	}
	extra := adjusted(ax) + 2
	if extra < 0 {
		extra = 0
	}
	r := widen(w, uint32(extra))
	ed := apd.MakeErrDecimal(r)

	wide := new(apd.Decimal)
	if err := Pi(r, wide); err != nil {
		return nil, err
	}
	twoPi := ed.Mul(new(apd.Decimal), wide, decTwo)
	rem := ed.Rem(new(apd.Decimal), x, twoPi)
	if rem.Cmp(wide) > 0 {
		ed.Sub(rem, rem, twoPi)
	}
	if neg := new(apd.Decimal).Neg(wide); rem.Cmp(neg) < 0 {
		ed.Add(rem, rem, twoPi)
	}
	if err := ed.Err(); err != nil {
		return nil, err
	}

	return rem, nil
}

// Sin sets d to sin(x) rounded to c's precision.
func Sin(c *apd.Context, d, x *apd.Decimal) error {
	w := widen(c, guardDigits)
	r, err := reduce(w, x)
	if err != nil {
		return decmathErrorf("Sin", err)
	}

	// sin r = Σ (−1)^n r^(2n+1) / (2n+1)!
	ed := apd.MakeErrDecimal(w)
	r2 := ed.Mul(new(apd.Decimal), r, r)
	term := new(apd.Decimal).Set(r)
	sum := new(apd.Decimal).Set(r)
	converged := false
	for n := int64(1); n < maxTerms; n++ {
		ed.Mul(term, term, r2)
		ed.Quo(term, term, apd.New(-(2*n)*(2*n+1), 0))
		ed.Add(sum, sum, term)
		if ed.Err() != nil {
			break
		}
		if negligible(term, sum, w.Precision) {
			converged = true

			break
		}
	}
	if err = ed.Err(); err != nil {
		return decmathErrorf("Sin", err)
	}
	if !converged {
		return decmathErrorf("Sin", ErrNoConvergence)
	}
	if _, err = c.Round(d, sum); err != nil {
		return decmathErrorf("Sin", err)
	}

	return nil
}

// Cos sets d to cos(x) rounded to c's precision.
func Cos(c *apd.Context, d, x *apd.Decimal) error {
	w := widen(c, guardDigits)
	r, err := reduce(w, x)
	if err != nil {
		return decmathErrorf("Cos", err)
	}

	// cos r = Σ (−1)^n r^(2n) / (2n)!
	ed := apd.MakeErrDecimal(w)
	r2 := ed.Mul(new(apd.Decimal), r, r)
	term := new(apd.Decimal).Set(decOne)
	sum := new(apd.Decimal).Set(decOne)
	converged := false
	for n := int64(1); n < maxTerms; n++ {
		ed.Mul(term, term, r2)
		ed.Quo(term, term, apd.New(-(2*n-1)*(2*n), 0))
		ed.Add(sum, sum, term)
		if ed.Err() != nil {
			break
		}
		if negligible(term, sum, w.Precision) {
			converged = true

			break
		}
	}
	if err = ed.Err(); err != nil {
		return decmathErrorf("Cos", err)
	}
	if !converged {
		return decmathErrorf("Cos", ErrNoConvergence)
	}
	if _, err = c.Round(d, sum); err != nil {
		return decmathErrorf("Cos", err)
	}

	return nil
}

// atanSeries sums atan(x) = Σ (−1)^n x^(2n+1) / (2n+1) at w's precision.
// Callers must ensure |x| is small; convergence is geometric in x².
func atanSeries(w *apd.Context, x *apd.Decimal) (*apd.Decimal, error) {
	ed := apd.MakeErrDecimal(w)
	x2 := ed.Mul(new(apd.Decimal), x, x)
	power := new(apd.Decimal).Set(x)
	sum := new(apd.Decimal).Set(x)
	term := new(apd.Decimal)
	for n := int64(1); n < maxTerms; n++ {
		ed.Mul(power, power, x2)
		ed.Neg(power, power)
		ed.Quo(term, power, apd.New(2*n+1, 0))
		ed.Add(sum, sum, term)
		if err := ed.Err(); err != nil {
			return nil, err
		}
		if negligible(term, sum, w.Precision) {
			return sum, nil
		}
	}

	return nil, ErrNoConvergence
}

// Atan sets d to atan(x) rounded to c's precision. The result lies in (−π/2, π/2).
func Atan(c *apd.Context, d, x *apd.Decimal) error {
	w := widen(c, guardDigits)
	sum, err := atan(w, x)
	if err != nil {
		return decmathErrorf("Atan", err)
	}
	if _, err = c.Round(d, sum); err != nil {
		return decmathErrorf("Atan", err)
	}

	return nil
}

// atan evaluates atan(x) at w's precision without final rounding.
func atan(w *apd.Context, x *apd.Decimal) (*apd.Decimal, error) {
	if x.IsZero() {
		return new(apd.Decimal), nil
	}

	ed := apd.MakeErrDecimal(w)
	ax := new(apd.Decimal).Abs(x)

	// |x| > 1: atan(x) = π/2 − atan(1/x).
	invert := ax.Cmp(decOne) > 0
	if invert {
		ed.Quo(ax, decOne, ax)
	}

	limit, _, err := apd.NewFromString(atanReduceLimit)
	if err != nil {
		return nil, err
	}

	// Halve the angle until the series converges quickly.
	halvings := 0
	root := new(apd.Decimal)
	for ax.Cmp(limit) > 0 {
		ed.Mul(root, ax, ax)
		ed.Add(root, root, decOne)
		ed.Sqrt(root, root)
		ed.Add(root, root, decOne)
		ed.Quo(ax, ax, root)
		halvings++
	}
	if err = ed.Err(); err != nil {
		return nil, err
	}

	sum, err := atanSeries(w, ax)
	if err != nil {
		return nil, err
	}
	for ; halvings > 0; halvings-- {
		ed.Mul(sum, sum, decTwo)
	}

	if invert {
		half := new(apd.Decimal)
		if err = Pi(w, half); err != nil {
			return nil, err
		}
		ed.Quo(half, half, decTwo)
		ed.Sub(sum, half, sum)
	}
	if x.Negative {
		ed.Neg(sum, sum)
	}
	if err = ed.Err(); err != nil {
		return nil, err
	}

	return sum, nil
}

// Acos sets d to acos(x) rounded to c's precision. The result lies in [0, π].
// Arguments outside [−1, 1] fail with ErrOutOfDomain.
func Acos(c *apd.Context, d, x *apd.Decimal) error {
	ax := new(apd.Decimal).Abs(x)
	if ax.Cmp(decOne) > 0 {
		return decmathErrorf("Acos", ErrOutOfDomain)
	}

	w := widen(c, guardDigits)
	ed := apd.MakeErrDecimal(w)
	pi := new(apd.Decimal)
	if err := Pi(w, pi); err != nil {
		return decmathErrorf("Acos", err)
	}

	res := new(apd.Decimal)
	switch {
	case x.IsZero():
		ed.Quo(res, pi, decTwo)
	case ax.Cmp(decOne) == 0 && !x.Negative:
		// acos(1) = 0
	case ax.Cmp(decOne) == 0:
		res.Set(pi)
	default:
		// √(1−x²) / |x|
		s := ed.Mul(new(apd.Decimal), x, x)
		ed.Sub(s, decOne, s)
		ed.Sqrt(s, s)
		ed.Quo(s, s, ax)
		if err := ed.Err(); err != nil {
			return decmathErrorf("Acos", err)
		}
		t, err := atan(w, s)
		if err != nil {
			return decmathErrorf("Acos", err)
		}
		res.Set(t)
		if x.Negative {
			ed.Sub(res, pi, t)
		}
	}
	if err := ed.Err(); err != nil {
		return decmathErrorf("Acos", err)
	}
	if _, err := c.Round(d, res); err != nil {
		return decmathErrorf("Acos", err)
	}

	return nil
}
