package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// SecondsToFrames converts a delay to whole ticks at TPS, rounding to the
// nearest tick. Negative delays count as zero.
func SecondsToFrames(seconds float64) int {
	if seconds <= 0 {
		return 0
	}
	return int(math.Round(seconds * TPS))
}
