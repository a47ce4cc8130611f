package entity

import (
	"errors"
	"testing"

	"etf_dashboard/internal/feature/candles/domain"
)

func TestParsePeriod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"1mo", Period1Month, false},
		{"3mo", Period3Months, false},
		{"6mo", Period6Months, false},
		{"1y", Period1Year, false},
		{"YTD", PeriodYTD, false},
		{" 5y ", Period5Years, false},
		{"10y", Period10Years, false},
		{"", DefaultPeriod, false},
		{"2y", "", true},
		{"max", "", true},
		{"1d", "", true},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePeriod(tt.in)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidPeriod) {
					t.Fatalf("ParsePeriod(%q) error = %v, want ErrInvalidPeriod", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePeriod(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParsePeriod(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHistory_Closes(t *testing.T) {
	t.Parallel()

	h := History{Candles: []Candle{{Close: 1}, {Close: 2}, {Close: 3}}}
	got := h.Closes()
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("unexpected closes %v", got)
	}
	if h.Empty() {
		t.Error("history with candles should not be empty")
	}
	if !(History{}).Empty() {
		t.Error("zero history should be empty")
	}
}
