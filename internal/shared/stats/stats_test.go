package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{"single value", []float64{4}, 4},
		{"several values", []float64{1, 2, 3, 4}, 2.5},
		{"negative values", []float64{-1, 1}, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, Mean(tt.in), 1e-12)
		})
	}

	assert.True(t, math.IsNaN(Mean(nil)), "mean of empty slice should be NaN")
}

func TestVarianceAndStdDev(t *testing.T) {
	t.Parallel()

	// Sample variance of 2,4,4,4,5,5,7,9 is 32/7.
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 32.0/7.0, Variance(xs), 1e-12)
	assert.InDelta(t, math.Sqrt(32.0/7.0), StdDev(xs), 1e-12)

	assert.Equal(t, 0.0, Variance([]float64{3, 3, 3}))
	assert.True(t, math.IsNaN(Variance([]float64{1})), "variance needs two observations")
}

func TestCovariance(t *testing.T) {
	t.Parallel()

	xs := []float64{1, 2, 3, 4}
	ys := []float64{2, 4, 6, 8}

	assert.InDelta(t, Variance(xs), Covariance(xs, xs), 1e-12)
	assert.InDelta(t, 2*Variance(xs), Covariance(xs, ys), 1e-12)
	assert.True(t, math.IsNaN(Covariance(xs, ys[:3])), "mismatched lengths should be NaN")
	assert.True(t, math.IsNaN(Covariance([]float64{1}, []float64{2})))
}

func TestPctChange(t *testing.T) {
	t.Parallel()

	got := PctChange([]float64{100, 110, 99})
	if assert.Len(t, got, 2) {
		assert.InDelta(t, 0.10, got[0], 1e-12)
		assert.InDelta(t, -0.10, got[1], 1e-12)
	}

	assert.Nil(t, PctChange([]float64{100}))
	assert.Nil(t, PctChange(nil))
}
