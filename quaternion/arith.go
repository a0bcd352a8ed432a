// SPDX-License-Identifier: MIT
// Package quaternion: ring operations and the Quaternion/Scalar operand union.
//
// Purpose:
//   - Componentwise Add/Sub/Neg, the Hamilton product, scalar scaling and
//     both division forms.
//   - Resolve the operand kind at compile time (Mul vs Scale, Div vs DivScalar);
//     MulBy/DivBy cover callers holding the sealed Operand union.
//
// Rounding:
//   - Every intermediate product and sum is rounded to the receiver's working
//     precision, in the left-to-right order of the written formula.
//   - Ring operations never fail; decimal overflow saturates to ±Inf.

package quaternion

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Operand is the sealed union {Quaternion, Scalar} accepted by MulBy and DivBy.
type Operand interface {
	operand()
}

func (Quaternion) operand() {}
func (Scalar) operand()     {}

// Scalar is a real number used as the non-quaternion operand of
// multiplication and division. The zero value is 0.
type Scalar struct {
	v *apd.Decimal // exact; never mutated
}

// ParseScalar converts v into a Scalar using the same rules as New.
//
// Errors:
//   - ErrUnsupportedOperand (also matching ErrConversion) when v is not numeric.
func ParseScalar(v any) (Scalar, error) {
	d, err := toDecimal(v)
	if err != nil {
		return Scalar{}, quaternionErrorf(opParseScalar, fmt.Errorf("%w: %w", ErrUnsupportedOperand, err))
	}

	return Scalar{v: d}, nil
}

// MustScalar is ParseScalar that panics on error.
func MustScalar(v any) Scalar {
	s, err := ParseScalar(v)
	if err != nil {
		panic(err)
	}

	return s
}

// decimal returns the value, zero when unset. Shared; do not mutate.
func (s Scalar) decimal() *apd.Decimal { return orZero(s.v) }

// Decimal returns a copy of the scalar value.
func (s Scalar) Decimal() *apd.Decimal { return new(apd.Decimal).Set(s.decimal()) }

// String returns the exact decimal text of s.
func (s Scalar) String() string { return s.decimal().String() }

// Mul returns s·q, identical to q.Scale(s).
func (s Scalar) Mul(q Quaternion) Quaternion { return q.Scale(s) }

// Div is scalar / quaternion, which is not supported.
func (s Scalar) Div(Quaternion) (Quaternion, error) {
	return Quaternion{}, quaternionErrorf(opScalarDiv, ErrNotImplemented)
}

// ringOps returns an accumulator over the no-trap working context.
// Errors never surface from it: overflow yields ±Inf and Inf−Inf yields NaN.
func (c *Context) ringOps() *apd.ErrDecimal {
	ed := apd.MakeErrDecimal(c.ring)

	return &ed
}

// Add returns p + q componentwise.
func (p Quaternion) Add(q Quaternion) Quaternion {
	ctx := p.Context()
	ed := ctx.ringOps()
	a1, b1, c1, d1 := p.parts()
	a2, b2, c2, d2 := q.parts()

	return ctx.make(
		ed.Add(new(apd.Decimal), a1, a2),
		ed.Add(new(apd.Decimal), b1, b2),
		ed.Add(new(apd.Decimal), c1, c2),
		ed.Add(new(apd.Decimal), d1, d2),
	)
}

// Sub returns p − q componentwise.
func (p Quaternion) Sub(q Quaternion) Quaternion {
	ctx := p.Context()
	ed := ctx.ringOps()
	a1, b1, c1, d1 := p.parts()
	a2, b2, c2, d2 := q.parts()

	return ctx.make(
		ed.Sub(new(apd.Decimal), a1, a2),
		ed.Sub(new(apd.Decimal), b1, b2),
		ed.Sub(new(apd.Decimal), c1, c2),
		ed.Sub(new(apd.Decimal), d1, d2),
	)
}

// Neg returns −p.
func (p Quaternion) Neg() Quaternion {
	ctx := p.Context()
	ed := ctx.ringOps()
	a, b, c, d := p.parts()

	return ctx.make(
		ed.Neg(new(apd.Decimal), a),
		ed.Neg(new(apd.Decimal), b),
		ed.Neg(new(apd.Decimal), c),
		ed.Neg(new(apd.Decimal), d),
	)
}

// Mul returns the Hamilton product p·q:
//
//	a = a1a2 − b1b2 − c1c2 − d1d2
//	b = a1b2 + b1a2 + c1d2 − d1c2
//	c = a1c2 − b1d2 + c1a2 + d1b2
//	d = a1d2 + b1c2 − c1b2 + d1a2
//
// The product is not commutative: i·j = k but j·i = −k.
func (p Quaternion) Mul(q Quaternion) Quaternion {
	ctx := p.Context()
	ed := ctx.ringOps()
	a1, b1, c1, d1 := p.parts()
	a2, b2, c2, d2 := q.parts()

	mul := func(x, y *apd.Decimal) *apd.Decimal { return ed.Mul(new(apd.Decimal), x, y) }

	a := mul(a1, a2)
	ed.Sub(a, a, mul(b1, b2))
	ed.Sub(a, a, mul(c1, c2))
	ed.Sub(a, a, mul(d1, d2))

	b := mul(a1, b2)
	ed.Add(b, b, mul(b1, a2))
	ed.Add(b, b, mul(c1, d2))
	ed.Sub(b, b, mul(d1, c2))

	c := mul(a1, c2)
	ed.Sub(c, c, mul(b1, d2))
	ed.Add(c, c, mul(c1, a2))
	ed.Add(c, c, mul(d1, b2))

	d := mul(a1, d2)
	ed.Add(d, d, mul(b1, c2))
	ed.Sub(d, d, mul(c1, b2))
	ed.Add(d, d, mul(d1, a2))

	return ctx.make(a, b, c, d)
}

// Scale returns s·p: every component multiplied by s.
func (p Quaternion) Scale(s Scalar) Quaternion {
	ctx := p.Context()
	ed := ctx.ringOps()
	f := s.decimal()
	a, b, c, d := p.parts()

	return ctx.make(
		ed.Mul(new(apd.Decimal), f, a),
		ed.Mul(new(apd.Decimal), f, b),
		ed.Mul(new(apd.Decimal), f, c),
		ed.Mul(new(apd.Decimal), f, d),
	)
}

// Div returns the right quotient p·q⁻¹. This is not q⁻¹·p when p and q do
// not commute.
//
// Errors:
//   - ErrDomain when q has zero norm.
func (p Quaternion) Div(q Quaternion) (Quaternion, error) {
	inv, err := q.Inv()
	if err != nil {
		return Quaternion{}, quaternionErrorf(opDiv, err)
	}

	return p.Mul(inv), nil
}

// DivScalar returns p / s componentwise.
//
// Errors:
//   - ErrDomain when s is zero.
func (p Quaternion) DivScalar(s Scalar) (Quaternion, error) {
	q, err := p.quo(s.decimal())
	if err != nil {
		return Quaternion{}, quaternionErrorf(opDivScalar, err)
	}

	return q, nil
}

// quo divides every component by f at working precision.
func (p Quaternion) quo(f *apd.Decimal) (Quaternion, error) {
	if f.IsZero() {
		return Quaternion{}, fmt.Errorf("%w: division by zero", ErrDomain)
	}

	ctx := p.Context()
	ed := apd.MakeErrDecimal(ctx.work)
	a, b, c, d := p.parts()
	q := ctx.make(
		ed.Quo(new(apd.Decimal), a, f),
		ed.Quo(new(apd.Decimal), b, f),
		ed.Quo(new(apd.Decimal), c, f),
		ed.Quo(new(apd.Decimal), d, f),
	)
	if err := ed.Err(); err != nil {
		return Quaternion{}, fmt.Errorf("%w: %v", ErrDomain, err)
	}

	return q, nil
}

// MulBy multiplies p by a Quaternion (Hamilton product) or a Scalar.
//
// Errors:
//   - ErrUnsupportedOperand for a nil or foreign Operand.
func (p Quaternion) MulBy(x Operand) (Quaternion, error) {
	switch v := x.(type) {
	case Quaternion:
		return p.Mul(v), nil
	case Scalar:
		return p.Scale(v), nil
	default:
		return Quaternion{}, quaternionErrorf(opMulBy, fmt.Errorf("%w: %T", ErrUnsupportedOperand, x))
	}
}

// DivBy divides p by a Quaternion (right division) or a Scalar.
//
// Errors:
//   - ErrUnsupportedOperand for a nil or foreign Operand.
//   - ErrDomain for a zero divisor.
func (p Quaternion) DivBy(x Operand) (Quaternion, error) {
	switch v := x.(type) {
	case Quaternion:
		return p.Div(v)
	case Scalar:
		return p.DivScalar(v)
	default:
		return Quaternion{}, quaternionErrorf(opDivBy, fmt.Errorf("%w: %T", ErrUnsupportedOperand, x))
	}
}
