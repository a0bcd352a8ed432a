// SPDX-License-Identifier: MIT

// Package quaternion implements quaternion algebra over fixed-precision
// decimals.
//
// 🚀 What is a quaternion?
//
//	A hypercomplex number q = a + bi + cj + dk with i² = j² = k² = ijk = −1.
//	The real part a is the scalar part; (b, c, d) is the vector part.
//	Multiplication (the Hamilton product) is associative but NOT commutative:
//	ij = k while ji = −k.
//
// ✨ Key features:
//   - immutable value type: every operation returns a fresh Quaternion
//   - decimal components (github.com/cockroachdb/apd/v3) rounded to a working
//     precision, 32 significant digits by default
//   - approximate equality: Equal compares components after rounding to a
//     coarser comparison precision (16 digits by default), absorbing the
//     rounding drift of chained operations
//   - ring operations, conjugate, norm, inverse, normalisation
//   - Dot / Cross on purely imaginary quaternions
//   - Exp / Log evaluated in decimal at guard precision
//
// ⚙️ Usage:
//
//	import "github.com/lafras/quaternions/quaternion"
//
//	i := quaternion.MustNew(0, 1, 0, 0)
//	j := quaternion.MustNew(0, 0, 1, 0)
//	k := i.Mul(j)             // +0.00+0.00i+0.00j+1.00k
//
//	p, _ := quaternion.New(0.3, "-0.2", 0.1, 0.5)
//	e, _ := quaternion.Exp(p)
//	back, _ := quaternion.Log(e)
//	back.Equal(p)             // true
//
// Precision:
//
//	All arithmetic runs in a Context. The package default (Default) is built
//	once at init from DefaultPrecision / DefaultComparePrecision and is never
//	reconfigured. Callers needing other budgets build their own with
//	NewContext(WithPrecision(p), ...) and construct values through it.
//	Binary operations run in the receiver's context.
//
// Operand kinds:
//
//	Mul/Div take a Quaternion; Scale/DivScalar take a Scalar. MulBy/DivBy
//	accept the sealed Operand union of the two. A Scalar divided by a
//	Quaternion is not supported (ErrNotImplemented).
//
// Errors:
//   - ErrConversion          — constructor input is not a finite decimal.
//   - ErrUnsupportedOperand  — operand is neither a Quaternion nor a number.
//   - ErrOrderingUnsupported — Compare/Less; quaternions have no order.
//   - ErrNotImplemented      — Matrix, Polar, Scalar.Div.
//   - ErrDomain              — zero norm in Inv/Normalise/Log, division by zero,
//     acos/ln outside their domain.
//   - ErrNotPurelyImaginary  — Dot/Cross operand with a non-zero scalar part.
//   - ErrInvalidPrecision    — inconsistent NewContext options.
//
// Concurrency:
//
//	Values and contexts are read-only after construction and safe to share
//	between goroutines without locking.
package quaternion
