// SPDX-License-Identifier: MIT

package quaternion

import (
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// componentNames labels a, b, c, d in error messages.
var componentNames = [4]string{"a", "b", "c", "d"}

// decZero backs unset components; it is never mutated.
var decZero = new(apd.Decimal)

// Quaternion is the immutable value a + bi + cj + dk.
//
// Components are decimals rounded to the working precision of the Context
// that produced the value. The zero value is the zero quaternion in the
// default context. Quaternions are compared with Equal, never with ==.
type Quaternion struct {
	a, b, c, d *apd.Decimal // never mutated after construction
	ctx        *Context
}

// New builds a Quaternion in the default context. See (*Context).New.
func New(a, b, c, d any) (Quaternion, error) {
	return defaultContext.New(a, b, c, d)
}

// MustNew is New that panics on error. Intended for literals in tests and examples.
func MustNew(a, b, c, d any) Quaternion {
	return defaultContext.MustNew(a, b, c, d)
}

// Context returns the context p was built in.
func (p Quaternion) Context() *Context {
	if p.ctx == nil {
		return defaultContext
	}

	return p.ctx
}

// parts returns the four components, substituting zero for unset ones.
// The returned decimals are shared and must not be mutated.
func (p Quaternion) parts() (a, b, c, d *apd.Decimal) {
	return orZero(p.a), orZero(p.b), orZero(p.c), orZero(p.d)
}

func orZero(x *apd.Decimal) *apd.Decimal {
	if x == nil {
		return decZero
	}

	return x
}

// A returns a copy of the scalar component.
func (p Quaternion) A() *apd.Decimal { return new(apd.Decimal).Set(orZero(p.a)) }

// B returns a copy of the i component.
func (p Quaternion) B() *apd.Decimal { return new(apd.Decimal).Set(orZero(p.b)) }

// C returns a copy of the j component.
func (p Quaternion) C() *apd.Decimal { return new(apd.Decimal).Set(orZero(p.c)) }

// D returns a copy of the k component.
func (p Quaternion) D() *apd.Decimal { return new(apd.Decimal).Set(orZero(p.d)) }

// Components returns copies of (a, b, c, d).
func (p Quaternion) Components() [4]*apd.Decimal {
	return [4]*apd.Decimal{p.A(), p.B(), p.C(), p.D()}
}

// IsZero reports whether all four components are zero.
func (p Quaternion) IsZero() bool {
	a, b, c, d := p.parts()

	return a.IsZero() && b.IsZero() && c.IsZero() && d.IsZero()
}

// IsPure reports whether p is purely imaginary (zero scalar part).
func (p Quaternion) IsPure() bool {
	return orZero(p.a).IsZero()
}

// String renders p as "{a:+.2f}{b:+.2f}i{c:+.2f}j{d:+.2f}k".
// Every component carries an explicit sign; the number of fractional digits
// follows the context's display setting. The form is lossy and meant for
// humans only.
func (p Quaternion) String() string {
	ctx := p.Context()
	a, b, c, d := p.parts()

	var sb strings.Builder
	for i, x := range [4]*apd.Decimal{a, b, c, d} {
		sb.WriteString(ctx.format(x))
		if i > 0 {
			sb.WriteString(unitNames[i])
		}
	}

	return sb.String()
}

// unitNames are the basis suffixes used by String.
var unitNames = [4]string{"", "i", "j", "k"}

// format renders x with a forced sign and displayDigits fractional digits,
// rounding half-even.
func (c *Context) format(x *apd.Decimal) string {
	if x.Form != apd.Finite {
		s := x.String()
		if !x.Negative {
			s = "+" + s
		}
		return s
	}

	exp := -int32(c.displayDigits)
	// Quantize needs room for every integer digit plus the fractional ones.
	need := int64(x.Exponent) + x.NumDigits() + int64(c.displayDigits) + 1
	if need < 1 {
		need = 1
	}
	qc := newAPDContext(uint32(need), apd.DefaultTraps)

	r := new(apd.Decimal)
	if _, err := qc.Quantize(r, x, exp); err != nil {
		return x.String()
	}

	s := r.Text('f')
	if !r.Negative {
		s = "+" + s
	}

	return s
}

// Equal reports whether every component pair agrees at p's comparison
// precision: either both round to the same value, or they lie within half a
// unit of the last compared digit of the larger one. The second clause keeps
// values straddling a rounding midpoint equal. Equal is reflexive and
// symmetric; it is neither bit-exact nor transitive.
func (p Quaternion) Equal(q Quaternion) bool {
	ctx := p.Context()
	a1, b1, c1, d1 := p.parts()
	a2, b2, c2, d2 := q.parts()

	return ctx.sameAt(a1, a2) && ctx.sameAt(b1, b2) && ctx.sameAt(c1, c2) && ctx.sameAt(d1, d2)
}

// sameAt compares x and y at the comparison precision. NaN equals nothing.
func (c *Context) sameAt(x, y *apd.Decimal) bool {
	if isNaN(x) || isNaN(y) {
		return false
	}

	rx, ry := new(apd.Decimal), new(apd.Decimal)
	_, _ = c.compare.Round(rx, x)
	_, _ = c.compare.Round(ry, y)
	if rx.Cmp(ry) == 0 {
		return true
	}
	if x.Form != apd.Finite || y.Form != apd.Finite {
		return false
	}

	return c.withinHalfUnit(x, y)
}

// withinHalfUnit reports |x−y| ≤ 5·10^(e−P), where e is the adjusted exponent
// of max(|x|, |y|) and P the comparison precision.
func (c *Context) withinHalfUnit(x, y *apd.Decimal) bool {
	ax, ay := new(apd.Decimal).Abs(x), new(apd.Decimal).Abs(y)
	m := ax
	if ay.Cmp(ax) > 0 {
		m = ay
	}
	if m.IsZero() {
		return true
	}

	diff := new(apd.Decimal)
	exact := *c.guard
	exact.Traps = 0
	if _, err := exact.Sub(diff, x, y); err != nil {
		return false
	}
	diff.Abs(diff)

	e := int64(m.Exponent) + m.NumDigits() - 1 - int64(c.compare.Precision)
	if e < apd.MinExponent || e > apd.MaxExponent {
		return false
	}

	return diff.Cmp(apd.New(5, int32(e))) <= 0
}

// isNaN reports quiet and signaling NaN alike.
func isNaN(x *apd.Decimal) bool {
	return x.Form == apd.NaN || x.Form == apd.NaNSignaling
}

// Compare always fails: quaternions carry no ordering relation.
func (p Quaternion) Compare(Quaternion) (int, error) {
	return 0, quaternionErrorf(opCompare, ErrOrderingUnsupported)
}

// Less always fails: quaternions carry no ordering relation.
func (p Quaternion) Less(Quaternion) (bool, error) {
	return false, quaternionErrorf(opLess, ErrOrderingUnsupported)
}
