package presenter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFixed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{in: 1.234, want: "1.23"},
		{in: 1.235, want: "1.24"},
		{in: -1.235, want: "-1.24"},
		{in: 0.125, want: "0.13"},
		{in: 2, want: "2.00"},
		{in: -0.001, want: "0.00"},
		{in: math.NaN(), want: "NaN"},
		{in: math.Inf(1), want: "+Inf"},
		{in: math.Inf(-1), want: "-Inf"},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatFixed(tt.in))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "12.35%", FormatPercent(12.345))
	assert.Equal(t, "-3.10%", FormatPercent(-3.1))
	assert.Equal(t, "NaN", FormatPercent(math.NaN()))
}

// TestFormatParse_RoundTrip は整形した文字列を解析すると元の値から0.005以内に収まることを検証します。
func TestFormatParse_RoundTrip(t *testing.T) {
	t.Parallel()

	values := []float64{0, 0.004999, 0.005, 1.0049, -1.0051, 12.3456789, -98.7654, 1234.5678, 1e-9, 0.3333333}
	for _, v := range values {
		got, err := ParseFixed(FormatFixed(v))
		require.NoError(t, err)
		assert.InDelta(t, v, got, 0.005+1e-12, "fixed %v", v)

		got, err = ParsePercent(FormatPercent(v))
		require.NoError(t, err)
		assert.InDelta(t, v, got, 0.005+1e-12, "percent %v", v)
	}
}

func TestParse_Special(t *testing.T) {
	t.Parallel()

	v, err := ParsePercent("NaN")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	v, err = ParseFixed("-Inf")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, -1))

	_, err = ParseFixed("abc")
	assert.Error(t, err)

	_, err = ParsePercent("1.2.3%")
	assert.Error(t, err)
}
