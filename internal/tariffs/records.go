package tariffs

import "math"

// GoodAccessThreshold is the lowest DigitalAccessScore counted as good digital access.
const GoodAccessThreshold = 50.0

// Column names expected in the source files.
const (
	ColumnCountry    = "Country"
	ColumnDeficit    = "US 2024 Deficit"
	ColumnAlleged    = "Trump Tariffs Alleged"
	ColumnResponse   = "Trump Response"
	ColumnPopulation = "Population"
	ColumnScore      = "DigitalAccessScore"
)

// RawTariffRow is one data row of the tariff file before cleaning.
type RawTariffRow struct {
	Line     int
	Country  string
	Deficit  string
	Alleged  string
	Response string
}

// RawPopulationRow is one data row of the population file before cleaning.
type RawPopulationRow struct {
	Line       int
	Country    string
	Population string
}

// TariffRecord is a cleaned tariff row. Rates are in percent.
type TariffRecord struct {
	Country            string  `json:"country"`
	USDeficit2024      float64 `json:"usDeficit2024"`
	AllegedTariffRate  float64 `json:"allegedTariffRate"`
	ResponseTariffRate float64 `json:"responseTariffRate"`
}

// PopulationRecord is a cleaned population row. Population is nil when the cell was blank.
type PopulationRecord struct {
	Country    string   `json:"country"`
	Population *float64 `json:"population"`
}

// CountryRecord is one row of the merged dataset served to the charts.
type CountryRecord struct {
	Country            string
	USDeficit2024      float64
	AllegedTariffRate  float64
	ResponseTariffRate float64
	Population         *float64
	DigitalAccessScore float64
	GDPImpact          float64
}

// HasPopulation reports whether the join found a usable population figure.
func (r CountryRecord) HasPopulation() bool {
	return r.Population != nil
}

// HasGoodDigitalAccess reports whether the score reaches GoodAccessThreshold.
// A NaN score never does.
func (r CountryRecord) HasGoodDigitalAccess() bool {
	return r.DigitalAccessScore >= GoodAccessThreshold
}

// HasGDPImpact reports whether GDPImpact is defined.
func (r CountryRecord) HasGDPImpact() bool {
	return !math.IsNaN(r.GDPImpact) && !math.IsInf(r.GDPImpact, 0)
}

func (r CountryRecord) clone() CountryRecord {
	if r.Population != nil {
		p := *r.Population
		r.Population = &p
	}
	return r
}

func cloneRecords(records []CountryRecord) []CountryRecord {
	out := make([]CountryRecord, len(records))
	for i, r := range records {
		out[i] = r.clone()
	}
	return out
}
