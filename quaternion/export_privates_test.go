// SPDX-License-Identifier: MIT

package quaternion

// Test-Bridge (White-Box) for private helpers and the options snapshot.
//
// Purpose:
//   - Expose unexported option state, the acos clamp and the component
//     formatter to quaternion_test only.
//   - Compiled only with the package's tests (file name ends in _test.go).

import "github.com/cockroachdb/apd/v3"

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicPrecisionInvalid_TestOnly        = panicPrecisionInvalid
	PanicComparePrecisionInvalid_TestOnly = panicComparePrecisionInvalid
	PanicDisplayDigitsInvalid_TestOnly    = panicDisplayDigitsInvalid
	PanicGuardDigitsInvalid_TestOnly      = panicGuardDigitsInvalid
)

// OptionsSnapshot is a read-only view of the internal Options.
type OptionsSnapshot struct {
	Precision        uint32
	ComparePrecision uint32
	GuardDigits      uint32
	DisplayDigits    int
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Precision:        o.precision,
		ComparePrecision: o.comparePrecision,
		GuardDigits:      o.guardDigits,
		DisplayDigits:    o.displayDigits,
	}
}

// ClampUnit_TestOnly forwards to the private acos-argument clamp.
func ClampUnit_TestOnly(c *Context, x *apd.Decimal) (*apd.Decimal, error) {
	return c.clampUnit(x)
}

// GuardPrecision_TestOnly reports the precision Exp/Log evaluate at.
func GuardPrecision_TestOnly(c *Context) uint32 {
	return c.guard.Precision
}

// Format_TestOnly renders one component the way String does.
func Format_TestOnly(c *Context, x *apd.Decimal) string {
	return c.format(x)
}
