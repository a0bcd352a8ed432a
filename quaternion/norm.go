// SPDX-License-Identifier: MIT

package quaternion

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Conj returns the conjugate (a, −b, −c, −d).
func (p Quaternion) Conj() Quaternion {
	ctx := p.Context()
	ed := ctx.ringOps()
	a, b, c, d := p.parts()

	return ctx.make(
		new(apd.Decimal).Set(a),
		ed.Neg(new(apd.Decimal), b),
		ed.Neg(new(apd.Decimal), c),
		ed.Neg(new(apd.Decimal), d),
	)
}

// Norm returns √(a² + b² + c² + d²) at working precision.
func (p Quaternion) Norm() *apd.Decimal {
	ctx := p.Context()
	a, b, c, d := p.parts()

	return normIn(ctx.ring, a, b, c, d)
}

// Abs is Norm.
func (p Quaternion) Abs() *apd.Decimal {
	return p.Norm()
}

// normIn evaluates the Euclidean length of xs in apd context w, summing the
// squares left to right. NaN results are returned as-is.
func normIn(w *apd.Context, xs ...*apd.Decimal) *apd.Decimal {
	ed := apd.MakeErrDecimal(w)
	sum := new(apd.Decimal)
	sq := new(apd.Decimal)
	for _, x := range xs {
		ed.Mul(sq, x, x)
		ed.Add(sum, sum, sq)
	}
	ed.Sqrt(sum, sum)

	return sum
}

// Inv returns the multiplicative inverse conj(p) / |p|².
//
// Errors:
//   - ErrDomain when p has zero norm.
func (p Quaternion) Inv() (Quaternion, error) {
	n := p.Norm()
	if n.IsZero() {
		return Quaternion{}, quaternionErrorf(opInv, fmt.Errorf("%w: zero norm", ErrDomain))
	}

	ed := p.Context().ringOps()
	n2 := ed.Mul(new(apd.Decimal), n, n)

	q, err := p.Conj().quo(n2)
	if err != nil {
		return Quaternion{}, quaternionErrorf(opInv, err)
	}

	return q, nil
}

// Normalise returns p / |p|, a unit quaternion.
//
// Errors:
//   - ErrDomain when p has zero norm.
func (p Quaternion) Normalise() (Quaternion, error) {
	n := p.Norm()
	if n.IsZero() {
		return Quaternion{}, quaternionErrorf(opNormalise, fmt.Errorf("%w: zero norm", ErrDomain))
	}

	q, err := p.quo(n)
	if err != nil {
		return Quaternion{}, quaternionErrorf(opNormalise, err)
	}

	return q, nil
}

// ScalarPart returns (a, 0, 0, 0).
func (p Quaternion) ScalarPart() Quaternion {
	ctx := p.Context()

	return ctx.make(p.A(), new(apd.Decimal), new(apd.Decimal), new(apd.Decimal))
}

// VectorPart returns (0, b, c, d).
func (p Quaternion) VectorPart() Quaternion {
	ctx := p.Context()

	return ctx.make(new(apd.Decimal), p.B(), p.C(), p.D())
}

// Unit returns the norm of the vector part as a plain number.
// Unlike ScalarPart and VectorPart it is not a Quaternion.
func (p Quaternion) Unit() *apd.Decimal {
	return p.VectorPart().Norm()
}

// Matrix would return the 4×4 real matrix of left multiplication by p:
//
//	[[ a,  b,  c,  d],
//	 [-b,  a, -d,  c],
//	 [-c,  d,  a, -b],
//	 [-d, -c,  b,  a]]
//
// It is declared but not supported; it always returns ErrNotImplemented.
func (p Quaternion) Matrix() ([4][4]*apd.Decimal, error) {
	return [4][4]*apd.Decimal{}, quaternionErrorf(opMatrix, ErrNotImplemented)
}

// Polar would return the polar decomposition |p|·(cos θ + n̂ sin θ).
// It is declared but not supported; it always returns ErrNotImplemented.
func (p Quaternion) Polar() (norm *apd.Decimal, axis Quaternion, angle *apd.Decimal, err error) {
	return nil, Quaternion{}, nil, quaternionErrorf(opPolar, ErrNotImplemented)
}
