// Package sampler turns attribute seeds into values drawn uniformly from
// configured ranges. All draws are pure functions of the seed: there is no
// RNG state, so any attribute can be resampled in isolation and results are
// bit-exact across platforms.
package sampler

import (
	"math"

	"universe-engine/config"
	"universe-engine/generr"
)

// Sample draws a float64 uniformly from the closed interval [r.Min, r.Max].
// A degenerate range (Min == Max) yields the constant. A range with
// Min > Max fails with ErrInvalidRange.
func Sample(seed uint64, r config.Range) (float64, error) {
	if !r.Valid() {
		return 0, generr.InvalidRangef("sample range min %v greater than max %v", r.Min, r.Max)
	}
	return r.Min + unit(seed)*r.Span(), nil
}

// SampleInt draws from the range and rounds half-up (2.5 rounds to 3,
// -0.5 rounds to 0). This is the single rounding rule used for every
// integer attribute.
func SampleInt(seed uint64, r config.Range) (int, error) {
	v, err := Sample(seed, r)
	if err != nil {
		return 0, err
	}
	return int(math.Floor(v + 0.5)), nil
}

// SampleCount draws a child count from the range. Counts never go below
// zero even if the configured range dips negative.
func SampleCount(seed uint64, r config.Range) (int, error) {
	n, err := SampleInt(seed, r)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		n = 0
	}
	return n, nil
}

// SampleBool draws true with probability p. p <= 0 is always false and
// p >= 1 is always true.
func SampleBool(seed uint64, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return unit(seed) < p
}

// unit maps a seed onto [0, 1] using its top 53 bits, the full precision of
// a float64 mantissa.
func unit(seed uint64) float64 {
	return float64(seed>>11) / float64(1<<53-1)
}
