package presenter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etf_dashboard/internal/feature/analysis/domain/entity"
)

func TestPalette_At(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Greens.Light, Greens.At(0))
	assert.Equal(t, Greens.Dark, Greens.At(1))
	assert.Equal(t, Greens.Light, Greens.At(-3), "clamped below")
	assert.Equal(t, Greens.Dark, Greens.At(7), "clamped above")
	assert.Equal(t, "#f7fcf5", Greens.Light.Hex())
}

func TestScale_Color(t *testing.T) {
	t.Parallel()

	t.Run("min is light and max is dark", func(t *testing.T) {
		t.Parallel()
		s := NewScale(Blues, []float64{3, 1, math.NaN(), 2})

		c, ok := s.Color(1)
		require.True(t, ok)
		assert.Equal(t, Blues.Light, c)

		c, ok = s.Color(3)
		require.True(t, ok)
		assert.Equal(t, Blues.Dark, c)

		c, ok = s.Color(2)
		require.True(t, ok)
		assert.Equal(t, Blues.At(0.5), c)
	})

	t.Run("single distinct value uses mid colour", func(t *testing.T) {
		t.Parallel()
		s := NewScale(Purples, []float64{4, 4})
		c, ok := s.Color(4)
		require.True(t, ok)
		assert.Equal(t, Purples.At(0.5), c)
	})

	t.Run("NaN is not coloured", func(t *testing.T) {
		t.Parallel()
		s := NewScale(Oranges, []float64{1, 2})
		_, ok := s.Color(math.NaN())
		assert.False(t, ok)
	})

	t.Run("all NaN column", func(t *testing.T) {
		t.Parallel()
		s := NewScale(Oranges, []float64{math.NaN()})
		_, ok := s.Color(1)
		assert.False(t, ok)
	})
}

func TestTextColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#ffffff", TextColor(Greens.Dark).Hex())
	assert.Equal(t, "#000000", TextColor(Greens.Light).Hex())
}

func TestBuildTable(t *testing.T) {
	t.Parallel()

	summaries := []entity.RiskSummary{
		{Symbol: "SPY", HistoricalReturn: 12.345, Volatility: 0.15, Beta: 1, Alpha: 0.5},
		{Symbol: "GLD", HistoricalReturn: -2, Volatility: 0.2, Beta: math.NaN(), Alpha: math.NaN()},
	}

	table := BuildTable(summaries)

	assert.Equal(t, entity.Columns, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "SPY", table.Rows[0].Symbol)
	assert.Equal(t, "GLD", table.Rows[1].Symbol)

	spy := table.Rows[0].Cells
	require.Len(t, spy, 4)
	assert.Equal(t, "12.35%", spy[0].Text)
	assert.Equal(t, "15.00%", spy[1].Text)
	assert.Equal(t, "1.00", spy[2].Text)
	assert.Equal(t, "0.50", spy[3].Text)

	// SPY has the highest return and the lowest volatility.
	assert.Equal(t, Greens.Dark.Hex(), spy[0].Background)
	assert.Equal(t, Oranges.Light.Hex(), spy[1].Background)
	// Only one finite beta: mid colour.
	assert.Equal(t, Blues.At(0.5).Hex(), spy[2].Background)
	assert.NotEmpty(t, spy[2].Foreground)

	gld := table.Rows[1].Cells
	assert.Equal(t, "-2.00%", gld[0].Text)
	assert.Equal(t, Greens.Light.Hex(), gld[0].Background)
	assert.Equal(t, "NaN", gld[2].Text)
	assert.Empty(t, gld[2].Background)
	assert.Empty(t, gld[2].Foreground)
	assert.True(t, math.IsNaN(gld[3].Value))
}

func TestBuildTable_Empty(t *testing.T) {
	t.Parallel()

	table := BuildTable(nil)
	assert.True(t, table.Empty())
	assert.Len(t, table.Columns, 4)
}
