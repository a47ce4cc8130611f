// Package domain defines domain-level errors for the candles feature.
package domain

import "errors"

var (
	// ErrInvalidPeriod indicates a lookback token outside the supported set.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrEmptyDataset indicates that the provider answered but returned no rows
	// for the symbol and period.
	ErrEmptyDataset = errors.New("no data for symbol")
)
