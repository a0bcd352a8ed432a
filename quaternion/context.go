// SPDX-License-Identifier: MIT

package quaternion

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Context is an immutable decimal precision policy. It owns the apd contexts
// used for arithmetic, comparison and transcendental evaluation.
//
// A Context must be created with NewContext (or obtained from Default) and is
// read-only afterwards, so it may be shared freely between goroutines.
type Context struct {
	// ring runs Add/Sub/Mul with no traps: overflow saturates to ±Inf.
	ring *apd.Context
	// work runs quotients and square roots at working precision with traps.
	work *apd.Context
	// guard runs Exp/Log internals at working precision + guard digits.
	guard *apd.Context
	// compare rounds operands for Equal.
	compare *apd.Context

	displayDigits int
}

// defaultContext is built once at package initialisation and never mutated.
var defaultContext = mustContext()

// mustContext builds the default context; the defaults are consistent by construction.
func mustContext() *Context {
	c, err := NewContext()
	if err != nil {
		panic(err)
	}

	return c
}

// Default returns the process-wide context (DefaultPrecision, DefaultComparePrecision).
func Default() *Context {
	return defaultContext
}

// NewContext builds a Context from the defaults overridden by opts.
//
// Errors:
//   - ErrInvalidPrecision when the comparison precision exceeds the working precision.
func NewContext(opts ...Option) (*Context, error) {
	o := gatherOptions(opts...)
	if o.comparePrecision > o.precision {
		return nil, quaternionErrorf(opNewContext, fmt.Errorf("%w: compare precision %d exceeds working precision %d",
			ErrInvalidPrecision, o.comparePrecision, o.precision))
	}

	return &Context{
		ring:          newAPDContext(o.precision, 0),
		work:          newAPDContext(o.precision, apd.DefaultTraps),
		guard:         newAPDContext(o.precision+o.guardDigits, apd.DefaultTraps),
		compare:       newAPDContext(o.comparePrecision, 0),
		displayDigits: o.displayDigits,
	}, nil
}

// newAPDContext returns a half-even context with the given precision and traps.
func newAPDContext(precision uint32, traps apd.Condition) *apd.Context {
	c := apd.BaseContext.WithPrecision(precision)
	c.Rounding = apd.RoundHalfEven
	c.Traps = traps

	return c
}

// Precision returns the working precision in significant digits.
func (c *Context) Precision() uint32 { return c.work.Precision }

// ComparePrecision returns the precision used by Equal.
func (c *Context) ComparePrecision() uint32 { return c.compare.Precision }

// DisplayDigits returns the number of fractional digits printed by String.
func (c *Context) DisplayDigits() int { return c.displayDigits }

// New builds a Quaternion a + bi + cj + dk in this context.
// Each input is converted through its decimal string form and rounded to the
// working precision. Accepted kinds: Go integers and floats, decimal strings,
// *apd.Decimal and Scalar.
//
// Errors:
//   - ErrConversion naming the offending component.
func (c *Context) New(a, b, cc, d any) (Quaternion, error) {
	var parts [4]*apd.Decimal
	for i, v := range [4]any{a, b, cc, d} {
		x, err := c.convert(v)
		if err != nil {
			return Quaternion{}, quaternionErrorf(opNew, fmt.Errorf("component %s: %w", componentNames[i], err))
		}
		parts[i] = x
	}

	return c.make(parts[0], parts[1], parts[2], parts[3]), nil
}

// MustNew is New that panics on error. Intended for literals.
func (c *Context) MustNew(a, b, cc, d any) Quaternion {
	q, err := c.New(a, b, cc, d)
	if err != nil {
		panic(err)
	}

	return q
}

// make assembles a Quaternion from already-rounded components.
func (c *Context) make(a, b, cc, d *apd.Decimal) Quaternion {
	return Quaternion{a: a, b: b, c: cc, d: d, ctx: c}
}

// convert parses v as a decimal rounded to working precision.
func (c *Context) convert(v any) (*apd.Decimal, error) {
	x, err := toDecimal(v)
	if err != nil {
		return nil, err
	}
	if _, err = c.ring.Round(x, x); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConversion, err)
	}

	return x, nil
}

// toDecimal converts v to an exact finite decimal via its string form.
func toDecimal(v any) (*apd.Decimal, error) {
	var s string
	switch x := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		s = fmt.Sprint(x)
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return nil, fmt.Errorf("%w: non-finite float %v", ErrConversion, x)
		}
		s = strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: non-finite float %v", ErrConversion, x)
		}
		s = strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		s = strings.TrimSpace(x)
	case *apd.Decimal:
		if x == nil {
			return nil, fmt.Errorf("%w: nil *apd.Decimal", ErrConversion)
		}
		return finite(new(apd.Decimal).Set(x))
	case Scalar:
		return new(apd.Decimal).Set(x.decimal()), nil
	default:
		return nil, fmt.Errorf("%w: unsupported kind %T", ErrConversion, v)
	}

	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrConversion, s, err)
	}

	return finite(d)
}

// finite rejects NaN and infinite decimals.
func finite(d *apd.Decimal) (*apd.Decimal, error) {
	if d.Form != apd.Finite {
		return nil, fmt.Errorf("%w: non-finite decimal %s", ErrConversion, d)
	}

	return d, nil
}
