package stats

import "math"

// RollingMean returns the trailing mean over window for every index.
// The first window-1 values are NaN.
func RollingMean(xs []float64, window int) []float64 {
	return rolling(xs, window, Mean)
}

// RollingStdDev returns the trailing sample standard deviation over window.
// The first window-1 values are NaN.
func RollingStdDev(xs []float64, window int) []float64 {
	return rolling(xs, window, StdDev)
}

func rolling(xs []float64, window int, fn func([]float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i := range xs {
		if window <= 0 || i+1 < window {
			out[i] = math.NaN()
			continue
		}
		out[i] = fn(xs[i+1-window : i+1])
	}
	return out
}

// Bands holds a moving average and the envelope k standard deviations around it.
type Bands struct {
	Middle []float64
	Upper  []float64
	Lower  []float64
}

// BollingerBands computes the moving average of xs over window and the
// upper/lower bands at k sample standard deviations.
func BollingerBands(xs []float64, window int, k float64) Bands {
	mid := RollingMean(xs, window)
	sd := RollingStdDev(xs, window)
	b := Bands{
		Middle: mid,
		Upper:  make([]float64, len(xs)),
		Lower:  make([]float64, len(xs)),
	}
	for i := range xs {
		b.Upper[i] = mid[i] + k*sd[i]
		b.Lower[i] = mid[i] - k*sd[i]
	}
	return b
}
