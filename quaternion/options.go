// SPDX-License-Identifier: MIT

// Package quaternion: functional configuration of the decimal precision policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over the defaults.
//
// Design goals:
//   - Deterministic behavior: a Context is fixed at construction.
//   - No dead switches: each option changes observable behavior and is tested.
//   - Safe by construction: panic only on invalid parameters (programmer error);
//     cross-option consistency is reported by NewContext as ErrInvalidPrecision.
package quaternion

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of significant digits every component is
	// rounded to after each arithmetic step.
	DefaultPrecision uint32 = 32

	// DefaultComparePrecision is the number of significant digits Equal rounds
	// both operands to before comparing. Must not exceed the working precision.
	DefaultComparePrecision uint32 = 16

	// DefaultGuardDigits is added to the working precision while evaluating
	// Exp/Log, whose results are then rounded back to working precision.
	DefaultGuardDigits uint32 = 10

	// DefaultDisplayDigits is the number of fractional digits String prints per component.
	DefaultDisplayDigits = 2

	// MaxPrecision bounds WithPrecision and WithComparePrecision.
	MaxPrecision uint32 = 4096
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid        = "quaternion: WithPrecision: precision must be in [1, MaxPrecision]"
	panicComparePrecisionInvalid = "quaternion: WithComparePrecision: precision must be in [1, MaxPrecision]"
	panicDisplayDigitsInvalid    = "quaternion: WithDisplayDigits: digits must be non-negative"
	panicGuardDigitsInvalid      = "quaternion: WithGuardDigits: digits must not exceed MaxPrecision"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	precision        uint32 // DefaultPrecision
	comparePrecision uint32 // DefaultComparePrecision
	guardDigits      uint32 // DefaultGuardDigits
	displayDigits    int    // DefaultDisplayDigits
}

// WithPrecision sets the working precision in significant digits.
//
// Panics when p is 0 or larger than MaxPrecision.
func WithPrecision(p uint32) Option {
	if p == 0 || p > MaxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithComparePrecision sets the precision Equal rounds to before comparing.
// A value above the working precision is rejected later by NewContext.
//
// Panics when p is 0 or larger than MaxPrecision.
func WithComparePrecision(p uint32) Option {
	if p == 0 || p > MaxPrecision {
		panic(panicComparePrecisionInvalid)
	}

	return func(o *Options) { o.comparePrecision = p }
}

// WithGuardDigits sets the extra digits used inside Exp and Log.
func WithGuardDigits(n uint32) Option {
	if n > MaxPrecision {
		panic(panicGuardDigitsInvalid)
	}

	return func(o *Options) { o.guardDigits = n }
}

// WithDisplayDigits sets how many fractional digits String prints.
func WithDisplayDigits(n int) Option {
	if n < 0 {
		panic(panicDisplayDigitsInvalid)
	}

	return func(o *Options) { o.displayDigits = n }
}

// gatherOptions applies user setters on top of the defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		precision:        DefaultPrecision,
		comparePrecision: DefaultComparePrecision,
		guardDigits:      DefaultGuardDigits,
		displayDigits:    DefaultDisplayDigits,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
