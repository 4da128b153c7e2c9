package panels

import (
	"math"
	"strconv"
)

// Precision is the number of significant digits used for every size comparison.
// Sizes that only differ past this digit are considered equal.
const Precision = 10

// roundSize rounds v to Precision significant digits.
func roundSize(v float64) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', Precision, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// SizesEqual reports whether a and b are equal to Precision digits.
func SizesEqual(a, b float64) bool {
	return roundSize(a) == roundSize(b)
}

// sizeAtLeast reports whether a >= b to Precision digits.
func sizeAtLeast(a, b float64) bool {
	return roundSize(a) >= roundSize(b)
}

// sizeAtMost reports whether a <= b to Precision digits.
func sizeAtMost(a, b float64) bool {
	return roundSize(a) <= roundSize(b)
}

// FormatSize renders a size with Precision significant digits.
func FormatSize(v float64) string {
	return strconv.FormatFloat(roundSize(v), 'g', Precision, 64)
}

// Same reports whether a and b are the same slice (same backing array and length).
// The engine returns its input unchanged on a no-op, so callers detect no-ops with Same.
func Same(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return (a == nil) == (b == nil)
	}
	return &a[0] == &b[0]
}

// Total returns the sum of sizes.
func Total(sizes []float64) float64 {
	total := 0.0
	for _, s := range sizes {
		total += s
	}
	return total
}
