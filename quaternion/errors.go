// SPDX-License-Identifier: MIT
// Package quaternion: sentinel error set.
// Every operation returns one of these sentinels, optionally wrapped with an
// operation tag via quaternionErrorf. Tests match them with errors.Is.
// No operation panics on user-supplied input; panics are reserved for the
// WithX option constructors (programmer error).

package quaternion

import (
	"errors"
	"fmt"
)

var (
	// ErrConversion is returned when a constructor input cannot be turned into
	// a finite decimal (unparsable string, NaN/Inf float, unsupported Go kind).
	ErrConversion = errors.New("quaternion: cannot convert value to decimal")

	// ErrUnsupportedOperand is returned when an arithmetic operand is neither a
	// Quaternion nor a numeric scalar.
	ErrUnsupportedOperand = errors.New("quaternion: unsupported operand")

	// ErrOrderingUnsupported is returned by every ordering comparison.
	ErrOrderingUnsupported = errors.New("quaternion: no ordering relation defined on quaternions")

	// ErrNotImplemented marks operations that are declared but intentionally
	// unsupported (Matrix, Polar, scalar divided by quaternion).
	ErrNotImplemented = errors.New("quaternion: operation not implemented")

	// ErrDomain signals an argument outside an operation's mathematical domain:
	// zero norm in Inv/Normalise/Log, division by zero, acos/ln out of range.
	ErrDomain = errors.New("quaternion: argument outside domain")

	// ErrNotPurelyImaginary is returned by Dot and Cross when an operand has a
	// non-zero scalar part.
	ErrNotPurelyImaginary = errors.New("quaternion: arguments are not purely imaginary")

	// ErrInvalidPrecision is returned by NewContext when the comparison
	// precision exceeds the working precision.
	ErrInvalidPrecision = errors.New("quaternion: invalid precision configuration")
)

// Operation tags for uniform error wrapping.
const (
	opNew         = "New"
	opParseScalar = "ParseScalar"
	opDiv         = "Div"
	opDivScalar   = "DivScalar"
	opMulBy       = "MulBy"
	opDivBy       = "DivBy"
	opScalarDiv   = "Scalar.Div"
	opInv         = "Inv"
	opNormalise   = "Normalise"
	opCompare     = "Compare"
	opLess        = "Less"
	opMatrix      = "Matrix"
	opPolar       = "Polar"
	opDot         = "Dot"
	opCross       = "Cross"
	opExp         = "Exp"
	opLog         = "Log"
	opRandom      = "Random"
	opNewContext  = "NewContext"
)

// quaternionErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func quaternionErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
