// SPDX-License-Identifier: MIT

// Package decmath provides the circular functions missing from apd:
// Sin, Cos, Atan, Acos and Pi over *apd.Decimal.
//
// Every kernel evaluates its power series at the caller's precision plus a
// small number of internal guard digits, then rounds the result back into the
// caller's context. Arguments are reduced before summation:
//
//	Sin, Cos — x is folded into [−π, π] with Rem by 2π.
//	Atan     — |x| > 1 uses atan(x) = π/2 − atan(1/x); the remainder is
//	           halved with atan(x) = 2·atan(x / (1 + √(1+x²))) until |x| ≤ 0.1.
//	Acos     — acos(x) = atan(√(1−x²) / x), shifted by π for x < 0.
//
// Pi is computed with Machin's formula and memoised per precision.
//
// Errors:
//   - ErrOutOfDomain    — Acos argument outside [−1, 1].
//   - ErrNoConvergence  — a series did not settle within maxTerms.
//   - apd condition errors from the caller's context traps.
package decmath
