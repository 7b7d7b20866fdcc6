package tariffs

import "math"

// Merge left-joins tariff records with population records on Country.
// Matching is exact and case-sensitive. Every tariff record yields exactly one
// CountryRecord, in input order; when a Country repeats in the population
// records the first occurrence is used. Unmatched population rows are dropped.
func Merge(tariffs []TariffRecord, population []PopulationRecord) []CountryRecord {
	byCountry := make(map[string]*float64, len(population))
	for _, p := range population {
		if _, exists := byCountry[p.Country]; exists {
			continue
		}
		byCountry[p.Country] = p.Population
	}

	merged := make([]CountryRecord, len(tariffs))
	for i, t := range tariffs {
		record := CountryRecord{
			Country:            t.Country,
			USDeficit2024:      t.USDeficit2024,
			AllegedTariffRate:  t.AllegedTariffRate,
			ResponseTariffRate: t.ResponseTariffRate,
			DigitalAccessScore: math.NaN(),
			GDPImpact:          math.NaN(),
		}
		if p := byCountry[t.Country]; p != nil {
			v := *p
			record.Population = &v
		}
		merged[i] = record
	}
	return merged
}
