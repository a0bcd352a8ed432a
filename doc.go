// Package quaternions is a quaternion algebra toolkit computed in fixed
// decimal precision rather than native floating point.
//
// 🚀 What is in the module?
//
//	An immutable quaternion value type with the full ring, norm-based
//	operations, vector algebra on purely imaginary quaternions, and the
//	exponential/logarithm pair, all evaluated on arbitrary-precision decimals.
//
// ✨ Why decimals?
//
//   - Predictable rounding: every component is rounded half-even to a working
//     precision (32 significant digits by default)
//   - Tolerant equality: values are compared at a coarser precision (16 digits
//     by default), so exp∘log and log∘exp round trips compare equal
//   - No hidden float64 step: sin, cos, acos and π are evaluated in decimal
//
// Packages:
//
//	quaternion/        — Quaternion, Scalar, Context; arithmetic, Dot/Cross, Exp/Log
//	internal/decmath/  — decimal sin, cos, atan, acos and π at guard precision
//	internal/config/   — environment configuration for executables
//	internal/demo/     — the quatdemo command (random round-trip check)
//	cmd/quatdemo/      — process entry point
//
// Quick example:
//
//	i := quaternion.MustNew(0, 1, 0, 0)
//	j := quaternion.MustNew(0, 0, 1, 0)
//	fmt.Println(i.Mul(j)) // +0.00+0.00i+0.00j+1.00k
//	fmt.Println(j.Mul(i)) // +0.00+0.00i+0.00j-1.00k
//
//	go get github.com/lafras/quaternions
package quaternions
