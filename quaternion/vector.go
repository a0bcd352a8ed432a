// SPDX-License-Identifier: MIT

package quaternion

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// requirePure fails with ErrNotPurelyImaginary unless both operands have a zero scalar part.
func requirePure(op string, p, q Quaternion) error {
	if !p.IsPure() || !q.IsPure() {
		return quaternionErrorf(op, fmt.Errorf("%w: scalar parts %s and %s", ErrNotPurelyImaginary, orZero(p.a), orZero(q.a)))
	}

	return nil
}

// Dot returns the dot product of two purely imaginary quaternions, wrapped
// as the scalar quaternion (b1b2 + c1c2 + d1d2, 0, 0, 0).
//
// Errors:
//   - ErrNotPurelyImaginary when either operand has a non-zero scalar part.
func Dot(p, q Quaternion) (Quaternion, error) {
	if err := requirePure(opDot, p, q); err != nil {
		return Quaternion{}, err
	}

	ctx := p.Context()
	ed := ctx.ringOps()
	_, b1, c1, d1 := p.parts()
	_, b2, c2, d2 := q.parts()

	s := ed.Mul(new(apd.Decimal), b1, b2)
	ed.Add(s, s, ed.Mul(new(apd.Decimal), c1, c2))
	ed.Add(s, s, ed.Mul(new(apd.Decimal), d1, d2))

	return ctx.make(s, new(apd.Decimal), new(apd.Decimal), new(apd.Decimal)), nil
}

// Cross returns the cross product of two purely imaginary quaternions,
// wrapped as (0, c1d2 − d1c2, d1b2 − b1d2, b1c2 − c1b2).
//
// Errors:
//   - ErrNotPurelyImaginary when either operand has a non-zero scalar part.
func Cross(p, q Quaternion) (Quaternion, error) {
	if err := requirePure(opCross, p, q); err != nil {
		return Quaternion{}, err
	}

	ctx := p.Context()
	ed := ctx.ringOps()
	_, b1, c1, d1 := p.parts()
	_, b2, c2, d2 := q.parts()

	diff := func(w, x, y, z *apd.Decimal) *apd.Decimal {
		r := ed.Mul(new(apd.Decimal), w, x)
		return ed.Sub(r, r, ed.Mul(new(apd.Decimal), y, z))
	}

	return ctx.make(
		new(apd.Decimal),
		diff(c1, d2, d1, c2),
		diff(d1, b2, b1, d2),
		diff(b1, c2, c1, b2),
	), nil
}
