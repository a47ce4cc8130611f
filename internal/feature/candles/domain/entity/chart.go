package entity

// BandWindow is the trailing window of the moving average and volatility bands.
const BandWindow = 20

// BandWidth is the number of standard deviations between the average and each band.
const BandWidth = 2.0

// Chart is a History annotated with the overlays drawn on the price chart.
// MA20, Upper and Lower are aligned with History.Candles; values before the
// window fills are NaN.
type Chart struct {
	History History
	MA20    []float64
	Upper   []float64
	Lower   []float64
}
