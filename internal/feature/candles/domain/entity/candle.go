// Package entity defines the domain models for the candles feature.
package entity

import "time"

// Candle represents one daily OHLCV bar for a symbol.
type Candle struct {
	Time   time.Time // Trading day, in the exchange's time zone
	Open   float64   // Opening price
	High   float64   // Highest price of the day
	Low    float64   // Lowest price of the day
	Close  float64   // Closing price
	Volume int64     // Trading volume
}

// FundInfo is the descriptive metadata the provider returns alongside prices.
// Empty fields mean the provider did not supply them.
type FundInfo struct {
	LongName       string
	Category       string
	Currency       string
	Exchange       string
	InstrumentType string
}

// History is the daily price history of one symbol over a lookback period.
// Candles are ordered oldest first.
type History struct {
	Symbol  string
	Period  Period
	Info    FundInfo
	Candles []Candle
}

// Empty reports whether the provider returned no rows.
func (h History) Empty() bool {
	return len(h.Candles) == 0
}

// Closes extracts the closing prices in chronological order.
func (h History) Closes() []float64 {
	closes := make([]float64, len(h.Candles))
	for i, c := range h.Candles {
		closes[i] = c.Close
	}
	return closes
}
