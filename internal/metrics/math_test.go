package metrics

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return a == b || math.Abs(a-b) < epsilon
}

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		input  []float64
		expect float64
	}{
		{"empty", nil, 0},
		{"single", []float64{5.0}, 5.0},
		{"multiple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"all_same", []float64{7, 7, 7}, 7.0},
		{"negative", []float64{-2, 0, 2}, 0},
		{"sum_overflows", []float64{math.MaxFloat64, math.MaxFloat64}, math.MaxFloat64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mean(tt.input)
			if !approxEqual(got, tt.expect) {
				t.Errorf("Mean(%v) = %f, want %f", tt.input, got, tt.expect)
			}
		})
	}
}

func TestSum(t *testing.T) {
	if got := Sum(nil); got != 0 {
		t.Errorf("Sum(nil) = %f, want 0", got)
	}
	if got := Sum([]float64{5, 3, 4, 6, 5}); !approxEqual(got, 23) {
		t.Errorf("Sum = %f, want 23", got)
	}
}

func TestSafeDivide(t *testing.T) {
	tests := []struct {
		name     string
		num, den float64
		want     float64
	}{
		{"zero_denominator", 5, 0, 0},
		{"zero_numerator", 0, 4, 0},
		{"simple", 5, 23, 5.0 / 23.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeDivide(tt.num, tt.den)
			if !approxEqual(got, tt.want) {
				t.Errorf("SafeDivide(%f, %f) = %f, want %f", tt.num, tt.den, got, tt.want)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want bool
	}{
		{"zero", 0, true},
		{"negative", -3.5, true},
		{"nan", math.NaN(), false},
		{"pos_inf", math.Inf(1), false},
		{"neg_inf", math.Inf(-1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFinite(tt.v); got != tt.want {
				t.Errorf("IsFinite(%f) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestRounding(t *testing.T) {
	tests := []struct {
		name  string
		round func(float64) float64
		in    float64
		want  float64
	}{
		{"4_places_down", RoundTo4, 5.833333, 5.8333},
		{"4_places_up", RoundTo4, 0.217391, 0.2174},
		{"4_places_float_noise", RoundTo4, 0.22 - 0.15, 0.07},
		{"2_places_up", RoundTo2, 46.666666, 46.67},
		{"2_places_exact", RoundTo2, 62.5, 62.5},
		{"2_places_negative", RoundTo2, -31.818181, -31.82},
		{"4_places_huge_unchanged", RoundTo4, 1e305, 1e305},
		{"2_places_huge_negative_unchanged", RoundTo2, -1e300, -1e300},
		{"4_places_max_float", RoundTo4, math.MaxFloat64, math.MaxFloat64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.round(tt.in)
			if !approxEqual(got, tt.want) {
				t.Errorf("round(%f) = %f, want %f", tt.in, got, tt.want)
			}
		})
	}
}
