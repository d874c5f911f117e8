package utils

import "math"

// IsFinite はNaNでも無限大でもないかを返します。
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// AllFinite は全ての値が有限かを返します。
func AllFinite(vs ...float64) bool {
	for _, v := range vs {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}
