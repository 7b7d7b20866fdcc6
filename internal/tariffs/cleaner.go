package tariffs

import (
	"math"
	"strconv"
	"strings"
)

// CleanAmount strips thousands separators from a number such as "1,234,567"
// and parses the rest.
func CleanAmount(raw string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	return parseCleaned(raw, cleaned)
}

// CleanPercent strips a trailing percent sign from a rate such as "12.5%".
// The value stays in percent units.
func CleanPercent(raw string) (float64, error) {
	cleaned := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	return parseCleaned(raw, cleaned)
}

// isDecimalRune reports whether r may appear in a plain decimal number.
// strconv.ParseFloat also takes hex, underscores and Inf, which the sources never use.
func isDecimalRune(r rune) bool {
	return (r >= '0' && r <= '9') || strings.ContainsRune(".+-eE", r)
}

func parseCleaned(raw, cleaned string) (float64, error) {
	if strings.IndexFunc(cleaned, func(r rune) bool { return !isDecimalRune(r) }) >= 0 {
		return 0, &ParseError{Value: raw, Err: errNotNumeric}
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, &ParseError{Value: raw, Err: errNotNumeric}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Value: raw, Err: errNotFinite}
	}
	return v, nil
}

// CleanTariffRows converts the raw tariff rows into TariffRecords.
// The first malformed cell aborts the whole collection.
func CleanTariffRows(rows []RawTariffRow) ([]TariffRecord, error) {
	out := make([]TariffRecord, 0, len(rows))
	for _, row := range rows {
		deficit, err := CleanAmount(row.Deficit)
		if err != nil {
			return nil, annotate(err, ColumnDeficit, row.Line)
		}
		alleged, err := CleanPercent(row.Alleged)
		if err != nil {
			return nil, annotate(err, ColumnAlleged, row.Line)
		}
		response, err := CleanPercent(row.Response)
		if err != nil {
			return nil, annotate(err, ColumnResponse, row.Line)
		}
		out = append(out, TariffRecord{
			Country:            row.Country,
			USDeficit2024:      deficit,
			AllegedTariffRate:  alleged,
			ResponseTariffRate: response,
		})
	}
	return out, nil
}

// CleanPopulationRows converts the raw population rows. Blank, "NA" and "NaN"
// cells become an absent population rather than an error.
func CleanPopulationRows(rows []RawPopulationRow) ([]PopulationRecord, error) {
	out := make([]PopulationRecord, 0, len(rows))
	for _, row := range rows {
		record := PopulationRecord{Country: row.Country}
		if !isMissing(row.Population) {
			v, err := CleanAmount(row.Population)
			if err != nil {
				return nil, annotate(err, ColumnPopulation, row.Line)
			}
			record.Population = &v
		}
		out = append(out, record)
	}
	return out, nil
}

func isMissing(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "", "na", "nan":
		return true
	}
	return false
}
