// SPDX-License-Identifier: MIT
package quaternion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lafras/quaternions/quaternion"
)

// TestDefaultOptions_Documented verifies that gathering no options yields the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := quaternion.GatherOptionsSnapshot_TestOnly()

	assert.Equal(t, quaternion.DefaultPrecision, o.Precision)
	assert.Equal(t, quaternion.DefaultComparePrecision, o.ComparePrecision)
	assert.Equal(t, quaternion.DefaultGuardDigits, o.GuardDigits)
	assert.Equal(t, quaternion.DefaultDisplayDigits, o.DisplayDigits)

	// the process-wide context mirrors the defaults
	ctx := quaternion.Default()
	assert.Equal(t, uint32(32), ctx.Precision())
	assert.Equal(t, uint32(16), ctx.ComparePrecision())
	assert.Equal(t, 2, ctx.DisplayDigits())
	assert.Equal(t, uint32(42), quaternion.GuardPrecision_TestOnly(ctx))
}

// TestOptions_LastWriterWins ensures setters apply in order.
func TestOptions_LastWriterWins(t *testing.T) {
	o := quaternion.GatherOptionsSnapshot_TestOnly(
		quaternion.WithPrecision(40),
		quaternion.WithPrecision(50),
		quaternion.WithComparePrecision(20),
		quaternion.WithGuardDigits(4),
		quaternion.WithDisplayDigits(5),
	)

	assert.Equal(t, uint32(50), o.Precision, "last WithPrecision wins")
	assert.Equal(t, uint32(20), o.ComparePrecision)
	assert.Equal(t, uint32(4), o.GuardDigits)
	assert.Equal(t, 5, o.DisplayDigits)
}

// TestOptions_PanicOnNonsense checks that WithX constructors reject invalid parameters.
func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.PanicsWithValue(t, quaternion.PanicPrecisionInvalid_TestOnly, func() { quaternion.WithPrecision(0) })
	assert.PanicsWithValue(t, quaternion.PanicPrecisionInvalid_TestOnly, func() { quaternion.WithPrecision(quaternion.MaxPrecision + 1) })
	assert.PanicsWithValue(t, quaternion.PanicComparePrecisionInvalid_TestOnly, func() { quaternion.WithComparePrecision(0) })
	assert.PanicsWithValue(t, quaternion.PanicDisplayDigitsInvalid_TestOnly, func() { quaternion.WithDisplayDigits(-1) })
	assert.PanicsWithValue(t, quaternion.PanicGuardDigitsInvalid_TestOnly, func() { quaternion.WithGuardDigits(quaternion.MaxPrecision + 1) })
}

// TestNewContext_ComparePrecisionAboveWorking must fail with ErrInvalidPrecision.
func TestNewContext_ComparePrecisionAboveWorking(t *testing.T) {
	ctx, err := quaternion.NewContext(quaternion.WithPrecision(8), quaternion.WithComparePrecision(16))
	assert.Nil(t, ctx)
	assert.ErrorIs(t, err, quaternion.ErrInvalidPrecision)
}

// TestNewContext_CustomPrecision checks that working and comparison precision both take effect.
func TestNewContext_CustomPrecision(t *testing.T) {
	ctx, err := quaternion.NewContext(quaternion.WithPrecision(5), quaternion.WithComparePrecision(3))
	require.NoError(t, err)

	q := ctx.MustNew("1.234567", 0, 0, 0)
	assert.Equal(t, "1.2346", q.A().String(), "components round to 5 digits")

	p := ctx.MustNew("1.234", 0, 0, 0)
	r := ctx.MustNew("1.229", 0, 0, 0)
	assert.True(t, p.Equal(r), "1.234 and 1.229 agree at 3 digits")
	assert.False(t, p.Equal(ctx.MustNew("1.24", 0, 0, 0)), "1.23 and 1.24 differ at 3 digits")

	// results stay in the receiver's context
	assert.Same(t, ctx, p.Add(r).Context())
}

// TestNewContext_DisplayDigits checks String honours WithDisplayDigits with half-even rounding.
func TestNewContext_DisplayDigits(t *testing.T) {
	ctx, err := quaternion.NewContext(quaternion.WithDisplayDigits(4))
	require.NoError(t, err)

	q := ctx.MustNew("0.12345", "-2", "0.00005", 7)
	assert.Equal(t, "+0.1234-2.0000i+0.0000j+7.0000k", q.String())
}
