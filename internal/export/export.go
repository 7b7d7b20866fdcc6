// Package export writes the merged dataset as downloadable tables.
package export

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"tariffdash.digitalaccess.org/internal/tariffs"
)

// Format names a table encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Header is the column row of every export.
var Header = []string{
	tariffs.ColumnCountry,
	tariffs.ColumnDeficit,
	tariffs.ColumnAlleged,
	tariffs.ColumnResponse,
	tariffs.ColumnPopulation,
	tariffs.ColumnScore,
	"GDP_Impact",
}

// ParseFormat accepts "csv" or "xlsx".
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatXLSX:
		return Format(s), nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Write encodes records in the given format.
func Write(w io.Writer, format Format, records []tariffs.CountryRecord) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, records)
	case FormatXLSX:
		return WriteXLSX(w, records)
	}
	return fmt.Errorf("unsupported export format %q", format)
}

// row holds the cells of one record; nil marks an absent value.
func row(r tariffs.CountryRecord) []any {
	cells := []any{r.Country, r.USDeficit2024, r.AllegedTariffRate, r.ResponseTariffRate, nil, nil, nil}
	if r.Population != nil {
		cells[4] = *r.Population
	}
	if !math.IsNaN(r.DigitalAccessScore) {
		cells[5] = r.DigitalAccessScore
	}
	if r.HasGDPImpact() {
		cells[6] = r.GDPImpact
	}
	return cells
}

func formatCell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
