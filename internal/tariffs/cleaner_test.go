package tariffs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"1,234,567", 1234567},
		{"295,402", 295402},
		{"237", 237},
		{" 1,000 ", 1000},
		{"-1,234", -1234},
		{"12.5", 12.5},
		{"1.5e3", 1500},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := CleanAmount(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleanPercent(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"12.5%", 12.5},
		{"67%", 67},
		{"10", 10},
		{" 34 % ", 34},
		{"0%", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := CleanPercent(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleanRejectsNonNumericResidue(t *testing.T) {
	for _, raw := range []string{"abc", "", "12%%", "1.2.3", "NaN", "Inf", "$100", "1e400", "0x1p4", "1_000", "0b101"} {
		t.Run(raw, func(t *testing.T) {
			_, err := CleanAmount(raw)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, raw, perr.Value)

			_, err = CleanPercent(raw)
			require.ErrorAs(t, err, &perr)
		})
	}
}

func TestCleanTariffRows(t *testing.T) {
	t.Run("converts every column", func(t *testing.T) {
		records, err := CleanTariffRows([]RawTariffRow{
			{Line: 2, Country: "A", Deficit: "1,000", Alleged: "10%", Response: "5%"},
			{Line: 3, Country: "B", Deficit: "2,000", Alleged: "20%", Response: "8%"},
		})
		require.NoError(t, err)
		assert.Equal(t, []TariffRecord{
			{Country: "A", USDeficit2024: 1000, AllegedTariffRate: 10, ResponseTariffRate: 5},
			{Country: "B", USDeficit2024: 2000, AllegedTariffRate: 20, ResponseTariffRate: 8},
		}, records)
	})

	t.Run("reports the failing cell", func(t *testing.T) {
		_, err := CleanTariffRows([]RawTariffRow{
			{Line: 2, Country: "A", Deficit: "1,000", Alleged: "10%", Response: "5%"},
			{Line: 3, Country: "B", Deficit: "2,000", Alleged: "twenty", Response: "8%"},
		})
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, ColumnAlleged, perr.Column)
		assert.Equal(t, 3, perr.Line)
		assert.Equal(t, "twenty", perr.Value)
		assert.True(t, errors.Is(err, errNotNumeric))
		assert.Contains(t, err.Error(), "line 3")
	})
}

func TestCleanPopulationRows(t *testing.T) {
	records, err := CleanPopulationRows([]RawPopulationRow{
		{Line: 2, Country: "A", Population: "1,000"},
		{Line: 3, Country: "B", Population: ""},
		{Line: 4, Country: "C", Population: "NA"},
	})
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.NotNil(t, records[0].Population)
	assert.Equal(t, 1000.0, *records[0].Population)
	assert.Nil(t, records[1].Population)
	assert.Nil(t, records[2].Population)

	_, err = CleanPopulationRows([]RawPopulationRow{{Line: 2, Country: "A", Population: "many"}})
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ColumnPopulation, perr.Column)
}
