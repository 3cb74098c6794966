package review

import (
	"testing"
)

func TestNextEaseFactor(t *testing.T) {
	tests := []struct {
		name     string
		ease     float64
		success  bool
		expected float64
	}{
		{
			name:     "success increases ease",
			ease:     2.0,
			success:  true,
			expected: 2.1,
		},
		{
			name:     "success never exceeds maximum",
			ease:     2.5,
			success:  true,
			expected: 2.5,
		},
		{
			name:     "failure decreases ease",
			ease:     2.5,
			success:  false,
			expected: 2.3,
		},
		{
			name:     "failure never goes below minimum",
			ease:     1.3,
			success:  false,
			expected: 1.3,
		},
		{
			name:     "failure near minimum clamps",
			ease:     1.4,
			success:  false,
			expected: 1.3,
		},
		{
			name:     "default ease when zero",
			ease:     0,
			success:  true,
			expected: 2.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NextEaseFactor(tt.ease, tt.success)
			if result < tt.expected-0.0001 || result > tt.expected+0.0001 {
				t.Errorf("NextEaseFactor(%v, %v) = %v, want %v", tt.ease, tt.success, result, tt.expected)
			}
		})
	}
}

func TestNextIntervalDays(t *testing.T) {
	tests := []struct {
		name     string
		interval int
		ease     float64
		success  bool
		expected int
	}{
		{
			name:     "success grows interval by ease",
			interval: 6,
			ease:     2.5,
			success:  true,
			expected: 15,
		},
		{
			name:     "success from initial interval rounds up",
			interval: 1,
			ease:     2.5,
			success:  true,
			expected: 3, // round(1 * 2.5)
		},
		{
			name:     "success rounds to nearest day",
			interval: 3,
			ease:     1.3,
			success:  true,
			expected: 4, // round(3.9)
		},
		{
			name:     "failure resets to one day",
			interval: 30,
			ease:     2.5,
			success:  false,
			expected: 1,
		},
		{
			name:     "failure from initial interval stays one",
			interval: 1,
			ease:     2.5,
			success:  false,
			expected: 1,
		},
		{
			name:     "zero interval treated as one",
			interval: 0,
			ease:     2.0,
			success:  true,
			expected: 2,
		},
		{
			name:     "default ease when zero",
			interval: 2,
			ease:     0,
			success:  true,
			expected: 5, // round(2 * 2.5)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NextIntervalDays(tt.interval, tt.ease, tt.success)
			if result != tt.expected {
				t.Errorf("NextIntervalDays(%v, %v, %v) = %v, want %v", tt.interval, tt.ease, tt.success, result, tt.expected)
			}
		})
	}
}

// Any outcome sequence must keep the ease factor within its bounds.
func TestEaseFactorBounds(t *testing.T) {
	sequences := [][]bool{
		{true, true, true, true, true, true, true, true},
		{false, false, false, false, false, false, false, false},
		{true, false, true, false, true, false, true, false},
		{false, true, false, false, true, true, false, false},
	}

	for _, seq := range sequences {
		ease := DefaultEaseFactor
		for i, success := range seq {
			ease = NextEaseFactor(ease, success)
			if ease < MinEaseFactor || ease > MaxEaseFactor {
				t.Fatalf("ease factor %v out of bounds after step %d of %v", ease, i, seq)
			}
		}
	}
}
