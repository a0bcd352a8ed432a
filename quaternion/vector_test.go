// SPDX-License-Identifier: MIT
package quaternion_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lafras/quaternions/quaternion"
)

const identityTrials = 25

var half = quaternion.MustScalar("0.5")

// randomPurePair draws two purely imaginary quaternions with components in [−100, 100).
func randomPurePair(t *testing.T, rng *rand.Rand) (quaternion.Quaternion, quaternion.Quaternion) {
	t.Helper()

	p, err := quaternion.Random(rng, -100, 100)
	require.NoError(t, err)
	q, err := quaternion.Random(rng, -100, 100)
	require.NoError(t, err)

	return p.VectorPart(), q.VectorPart()
}

// TestDotCross_KnownValues checks hand-computed products.
func TestDotCross_KnownValues(t *testing.T) {
	p := quaternion.MustNew(0, 1, 2, 3)
	q := quaternion.MustNew(0, 4, 5, 6)

	dot, err := quaternion.Dot(p, q)
	require.NoError(t, err)
	assert.True(t, dot.Equal(quaternion.MustNew(32, 0, 0, 0)))

	cross, err := quaternion.Cross(p, q)
	require.NoError(t, err)
	assert.True(t, cross.Equal(quaternion.MustNew(0, -3, 6, -3)))

	i, j, k := quaternion.MustNew(0, 1, 0, 0), quaternion.MustNew(0, 0, 1, 0), quaternion.MustNew(0, 0, 0, 1)
	ij, err := quaternion.Cross(i, j)
	require.NoError(t, err)
	assert.True(t, ij.Equal(k), "i × j = k")
}

// TestDotCross_RequirePureOperands ensures a non-zero scalar part on either side fails.
func TestDotCross_RequirePureOperands(t *testing.T) {
	pure := quaternion.MustNew(0, 1, 0, 0)
	mixed := quaternion.MustNew(1, 1, 0, 0)

	for _, args := range [][2]quaternion.Quaternion{{mixed, pure}, {pure, mixed}, {mixed, mixed}} {
		_, err := quaternion.Dot(args[0], args[1])
		assert.ErrorIs(t, err, quaternion.ErrNotPurelyImaginary)

		_, err = quaternion.Cross(args[0], args[1])
		assert.ErrorIs(t, err, quaternion.ErrNotPurelyImaginary)
	}

	_, err := quaternion.Dot(mixed, pure)
	assert.Contains(t, err.Error(), "arguments are not purely imaginary")
}

// TestDot_ConjugateIdentities verifies
//
//	p·q = −(pq + qp)/2 = (conj(p)q + conj(q)p)/2 = (p conj(q) + q conj(p))/2
//
// for random purely imaginary p and q.
func TestDot_ConjugateIdentities(t *testing.T) {
	rng := quaternion.NewRNG(11)
	for n := 0; n < identityTrials; n++ {
		p, q := randomPurePair(t, rng)

		dot, err := quaternion.Dot(p, q)
		require.NoError(t, err)

		viaConjLeft := p.Conj().Mul(q).Add(q.Conj().Mul(p)).Scale(half)
		viaConjRight := p.Mul(q.Conj()).Add(q.Mul(p.Conj())).Scale(half)
		viaAnti := p.Mul(q).Add(q.Mul(p)).Scale(half).Neg()

		assert.True(t, dot.Equal(viaConjLeft), "trial %d: %v vs %v", n, dot, viaConjLeft)
		assert.True(t, dot.Equal(viaConjRight), "trial %d: %v vs %v", n, dot, viaConjRight)
		assert.True(t, dot.Equal(viaAnti), "trial %d: %v vs %v", n, dot, viaAnti)
	}
}

// TestCross_ConjugateIdentities verifies
//
//	p × q = (pq − conj(q)conj(p))/2 = (pq − qp)/2
//
// for random purely imaginary p and q.
func TestCross_ConjugateIdentities(t *testing.T) {
	rng := quaternion.NewRNG(12)
	for n := 0; n < identityTrials; n++ {
		p, q := randomPurePair(t, rng)

		cross, err := quaternion.Cross(p, q)
		require.NoError(t, err)

		viaConj := p.Mul(q).Sub(q.Conj().Mul(p.Conj())).Scale(half)
		viaCommutator := p.Mul(q).Sub(q.Mul(p)).Scale(half)

		assert.True(t, cross.Equal(viaConj), "trial %d: %v vs %v", n, cross, viaConj)
		assert.True(t, cross.Equal(viaCommutator), "trial %d: %v vs %v", n, cross, viaCommutator)
	}
}

// TestMul_ScalarVectorDecomposition verifies, for arbitrary p = s + v and q = t + w,
//
//	pq = st − v·w + s·w + t·v + v × w.
func TestMul_ScalarVectorDecomposition(t *testing.T) {
	rng := quaternion.NewRNG(13)
	for n := 0; n < identityTrials; n++ {
		p, err := quaternion.Random(rng, -100, 100)
		require.NoError(t, err)
		q, err := quaternion.Random(rng, -100, 100)
		require.NoError(t, err)

		s, v := p.ScalarPart(), p.VectorPart()
		w := q.VectorPart()
		tt := q.ScalarPart()

		dot, err := quaternion.Dot(v, w)
		require.NoError(t, err)
		cross, err := quaternion.Cross(v, w)
		require.NoError(t, err)

		want := s.Mul(tt).Sub(dot).Add(s.Mul(w)).Add(tt.Mul(v)).Add(cross)
		assert.True(t, p.Mul(q).Equal(want), "trial %d: %v vs %v", n, p.Mul(q), want)

		// pure operands: pq = −v·w + v × w
		pure := dot.Neg().Add(cross)
		assert.True(t, v.Mul(w).Equal(pure), "trial %d: %v vs %v", n, v.Mul(w), pure)
	}
}
