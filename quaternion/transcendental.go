// SPDX-License-Identifier: MIT
// Package quaternion: exponential and natural logarithm.
//
// Both functions split q into its scalar part a and vector part v with
// n = |v|, and evaluate every real function (exp, ln, sin, cos, acos, √) in
// decimal at the guard precision of q's context. Log takes the rotation angle
// as atan2(n, a), which stays accurate when either n or a is tiny next to the
// other. Only the four final
// components are rounded to working precision, so Exp and Log undo each other
// under Equal.
//
// Degenerate vector part (n = 0):
//   - Exp returns (eᵃ, 0, 0, 0), the limit of the general formula.
//   - Log returns (ln a, 0, 0, 0) for a > 0 and ErrDomain for a < 0, where the
//     rotation axis of the logarithm is undefined.

package quaternion

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/lafras/quaternions/internal/decmath"
)

// Exp returns the quaternion exponential
//
//	exp(q) = eᵃ · (cos n + (v/n)·sin n),  v = (0, b, c, d), n = |v|.
//
// Errors:
//   - ErrDomain when eᵃ overflows the decimal exponent range, or when n is
//     too large to reduce modulo 2π.
func Exp(q Quaternion) (Quaternion, error) {
	ctx := q.Context()
	g := ctx.guard
	ed := apd.MakeErrDecimal(g)
	a, b, c, d := q.parts()

	ea := ed.Exp(new(apd.Decimal), a)
	if err := ed.Err(); err != nil {
		return Quaternion{}, quaternionErrorf(opExp, fmt.Errorf("%w: exp(%s): %v", ErrDomain, a, err))
	}

	n := normIn(g, b, c, d)
	if n.IsZero() {
		return ctx.rounded(opExp, ea, decZero, decZero, decZero)
	}

	sin, cos := new(apd.Decimal), new(apd.Decimal)
	if err := decmath.Sin(g, sin, n); err != nil {
		return Quaternion{}, quaternionErrorf(opExp, fmt.Errorf("%w: %w", ErrDomain, err))
	}
	if err := decmath.Cos(g, cos, n); err != nil {
		return Quaternion{}, quaternionErrorf(opExp, fmt.Errorf("%w: %w", ErrDomain, err))
	}

	// eᵃ·sin(n)/n scales the vector part.
	f := ed.Mul(new(apd.Decimal), ea, sin)
	ed.Quo(f, f, n)

	ra := ed.Mul(new(apd.Decimal), ea, cos)
	rb := ed.Mul(new(apd.Decimal), f, b)
	rc := ed.Mul(new(apd.Decimal), f, c)
	rd := ed.Mul(new(apd.Decimal), f, d)
	if err := ed.Err(); err != nil {
		return Quaternion{}, quaternionErrorf(opExp, fmt.Errorf("%w: %v", ErrDomain, err))
	}

	return ctx.rounded(opExp, ra, rb, rc, rd)
}

// Log returns the quaternion natural logarithm
//
//	log(q) = ln|q| + (v/n)·θ,  θ = atan2(n, a) = acos(a/|q|),  v = (0, b, c, d), n = |v|.
//
// The cosine a/|q| is still checked: it can leave [−1, 1] only through
// rounding, and an overshoot no larger than one unit in the last working digit
// is tolerated.
//
// Errors:
//   - ErrDomain when |q| = 0, when q is a negative real, or when a/|q| lies
//     genuinely outside [−1, 1].
func Log(q Quaternion) (Quaternion, error) {
	ctx := q.Context()
	g := ctx.guard
	ed := apd.MakeErrDecimal(g)
	a, b, c, d := q.parts()

	nq := normIn(g, a, b, c, d)
	if nq.IsZero() {
		return Quaternion{}, quaternionErrorf(opLog, fmt.Errorf("%w: zero norm", ErrDomain))
	}
	lnq := ed.Ln(new(apd.Decimal), nq)
	if err := ed.Err(); err != nil {
		return Quaternion{}, quaternionErrorf(opLog, fmt.Errorf("%w: ln(%s): %v", ErrDomain, nq, err))
	}

	n := normIn(g, b, c, d)
	if n.IsZero() {
		if a.Negative {
			return Quaternion{}, quaternionErrorf(opLog, fmt.Errorf("%w: negative real %s has no principal axis", ErrDomain, a))
		}
		return ctx.rounded(opLog, lnq, decZero, decZero, decZero)
	}

	ratio := ed.Quo(new(apd.Decimal), a, nq)
	if err := ed.Err(); err != nil {
		return Quaternion{}, quaternionErrorf(opLog, fmt.Errorf("%w: %v", ErrDomain, err))
	}
	if _, err := ctx.clampUnit(ratio); err != nil {
		return Quaternion{}, quaternionErrorf(opLog, err)
	}

	theta, err := atan2(g, n, a)
	if err != nil {
		return Quaternion{}, quaternionErrorf(opLog, fmt.Errorf("%w: %w", ErrDomain, err))
	}

	// θ/n scales the vector part.
	f := ed.Quo(new(apd.Decimal), theta, n)
	rb := ed.Mul(new(apd.Decimal), f, b)
	rc := ed.Mul(new(apd.Decimal), f, c)
	rd := ed.Mul(new(apd.Decimal), f, d)
	if err = ed.Err(); err != nil {
		return Quaternion{}, quaternionErrorf(opLog, fmt.Errorf("%w: %v", ErrDomain, err))
	}

	return ctx.rounded(opLog, lnq, rb, rc, rd)
}

// atan2 returns the angle of (a, n) for n > 0, in (0, π).
func atan2(g *apd.Context, n, a *apd.Decimal) (*apd.Decimal, error) {
	theta := new(apd.Decimal)
	if a.IsZero() {
		if err := decmath.Pi(g, theta); err != nil {
			return nil, err
		}
		_, err := g.Quo(theta, theta, apd.New(2, 0))

		return theta, err
	}

	t := new(apd.Decimal)
	if _, err := g.Quo(t, n, a); err != nil {
		return nil, err
	}
	t.Abs(t)
	if err := decmath.Atan(g, theta, t); err != nil {
		return nil, err
	}
	if !a.Negative {
		return theta, nil
	}

	// second quadrant: π − atan(n/|a|)
	pi := new(apd.Decimal)
	if err := decmath.Pi(g, pi); err != nil {
		return nil, err
	}
	_, err := g.Sub(theta, pi, theta)

	return theta, err
}

// clampUnit pulls x back into [−1, 1] when it overshoots by at most one unit
// in the last working digit, and fails with ErrDomain beyond that.
func (c *Context) clampUnit(x *apd.Decimal) (*apd.Decimal, error) {
	one := apd.New(1, 0)
	ax := new(apd.Decimal).Abs(x)
	if ax.Cmp(one) <= 0 {
		return x, nil
	}

	over := new(apd.Decimal)
	if _, err := c.guard.Sub(over, ax, one); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDomain, err)
	}
	if over.Cmp(apd.New(1, -int32(c.work.Precision))) > 0 {
		return nil, fmt.Errorf("%w: acos argument %s outside [-1, 1]", ErrDomain, x)
	}
	if x.Negative {
		return apd.New(-1, 0), nil
	}

	return one, nil
}

// rounded rounds guard-precision components to working precision.
func (c *Context) rounded(op string, a, b, cc, d *apd.Decimal) (Quaternion, error) {
	ed := apd.MakeErrDecimal(c.work)
	q := c.make(
		ed.Round(new(apd.Decimal), a),
		ed.Round(new(apd.Decimal), b),
		ed.Round(new(apd.Decimal), cc),
		ed.Round(new(apd.Decimal), d),
	)
	if err := ed.Err(); err != nil {
		return Quaternion{}, quaternionErrorf(op, fmt.Errorf("%w: %v", ErrDomain, err))
	}

	return q, nil
}
