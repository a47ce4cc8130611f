package entity

import (
	"fmt"
	"strings"

	"etf_dashboard/internal/feature/candles/domain"
)

// Period is a lookback token understood by the market data provider.
type Period string

// Supported lookback periods, in the order they are offered to users.
const (
	Period1Month  Period = "1mo"
	Period3Months Period = "3mo"
	Period6Months Period = "6mo"
	Period1Year   Period = "1y"
	PeriodYTD     Period = "ytd"
	Period5Years  Period = "5y"
	Period10Years Period = "10y"
)

// DefaultPeriod is used when the caller does not pick one.
const DefaultPeriod = Period1Month

// Periods lists every supported period.
var Periods = []Period{
	Period1Month, Period3Months, Period6Months, Period1Year, PeriodYTD, Period5Years, Period10Years,
}

// ParsePeriod validates a period token. An empty token yields DefaultPeriod.
func ParsePeriod(s string) (Period, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultPeriod, nil
	}
	p := Period(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidPeriod, s)
	}
	return p, nil
}

// Valid reports whether p is one of Periods.
func (p Period) Valid() bool {
	for _, v := range Periods {
		if p == v {
			return true
		}
	}
	return false
}

func (p Period) String() string { return string(p) }
