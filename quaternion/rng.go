// SPDX-License-Identifier: MIT
// Package quaternion: deterministic random quaternions.
//
// Policy (shared with every seeded helper in this module):
//   - seed == 0 ⇒ defaultRNGSeed, otherwise the seed verbatim.
//   - No time-based sources; callers wanting entropy supply their own seed.
//   - *rand.Rand is not goroutine-safe; do not share one across goroutines.

package quaternion

import (
	"fmt"
	"math"
	"math/rand"
)

// defaultRNGSeed is used when callers pass seed == 0 or a nil *rand.Rand.
const defaultRNGSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand for Random.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Random draws a Quaternion in the default context. See (*Context).Random.
func Random(rng *rand.Rand, lo, hi float64) (Quaternion, error) {
	return defaultContext.Random(rng, lo, hi)
}

// Random draws each component uniformly from [lo, hi) using rng and converts
// it exactly as New converts a float64. A nil rng uses NewRNG(0).
//
// Errors:
//   - ErrConversion when lo or hi is not finite or lo > hi.
func (c *Context) Random(rng *rand.Rand, lo, hi float64) (Quaternion, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
		return Quaternion{}, quaternionErrorf(opRandom, fmt.Errorf("%w: bad interval [%v, %v)", ErrConversion, lo, hi))
	}
	if rng == nil {
		rng = NewRNG(0)
	}

	var xs [4]any
	for i := range xs {
		xs[i] = lo + (hi-lo)*rng.Float64()
	}

	q, err := c.New(xs[0], xs[1], xs[2], xs[3])
	if err != nil {
		return Quaternion{}, quaternionErrorf(opRandom, err)
	}

	return q, nil
}
