package numberutils

import (
	"math"
	"strconv"
	"strings"
)

// MaxFloat64 returns the maximum value from a list of floats.
// It returns negative infinity when called without arguments.
func MaxFloat64(nums ...float64) float64 {
	maxVal := math.Inf(-1)
	for _, num := range nums {
		if num > maxVal {
			maxVal = num
		}
	}
	return maxVal
}

// MinFloat64 returns the minimum value from a list of floats.
// It returns positive infinity when called without arguments.
func MinFloat64(nums ...float64) float64 {
	minVal := math.Inf(1)
	for _, num := range nums {
		if num < minVal {
			minVal = num
		}
	}
	return minVal
}

// Round rounds num half away from zero to the given number of decimal places.
func Round(num float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(num*pow) / pow
}

// FormatFloat64 renders num with the shortest representation that keeps at least one decimal,
// so 23 becomes "23.0" and 23.45 stays "23.45".
func FormatFloat64(num float64) string {
	s := strconv.FormatFloat(num, 'f', -1, 64)
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
