package utils

import "math"

// SafeInt64ToInt converts an int64 row count to int without wrapping on
// 32-bit platforms. Values above math.MaxInt are capped.
func SafeInt64ToInt(v int64) int {
	if v > math.MaxInt {
		return math.MaxInt
	}
	if v < math.MinInt {
		return math.MinInt
	}
	return int(v)
}
