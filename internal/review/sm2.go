package review

import "math"

const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
	MaxEaseFactor     = 2.5

	// InitialIntervalDays is the interval assigned on a lesson's first outcome.
	InitialIntervalDays = 1
)

// NextEaseFactor returns the ease factor after one review outcome.
// Success adds 0.1, failure subtracts 0.2; the result always stays
// within [MinEaseFactor, MaxEaseFactor]. A zero ease (unset or corrupt
// row) is treated as the default.
func NextEaseFactor(ease float64, success bool) float64 {
	if ease == 0 {
		ease = DefaultEaseFactor
	}
	if success {
		ease += 0.1
	} else {
		ease -= 0.2
	}
	return clampEase(ease)
}

// NextIntervalDays returns the review interval after one outcome.
// Success grows the interval by the previous ease factor; failure resets
// it to one day so a lapsed lesson resurfaces immediately.
func NextIntervalDays(intervalDays int, ease float64, success bool) int {
	if !success {
		return 1
	}
	if ease == 0 {
		ease = DefaultEaseFactor
	}
	if intervalDays < 1 {
		intervalDays = 1
	}
	next := int(math.Round(float64(intervalDays) * ease))
	if next < 1 {
		return 1
	}
	return next
}

func clampEase(ease float64) float64 {
	return math.Min(MaxEaseFactor, math.Max(MinEaseFactor, ease))
}
