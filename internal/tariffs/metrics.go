package tariffs

import (
	"fmt"
	"math"
)

// GDPImpact returns deficit per head of population. It is NaN when the
// population is absent, zero or not finite.
func GDPImpact(deficit float64, population *float64) float64 {
	if population == nil {
		return math.NaN()
	}
	p := *population
	if p == 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		return math.NaN()
	}
	return deficit / p
}

// Synthesize returns a copy of records with DigitalAccessScore taken from provider
// and GDPImpact computed. The input slice is left untouched.
func Synthesize(records []CountryRecord, provider ScoreProvider) ([]CountryRecord, error) {
	if provider == nil {
		return nil, fmt.Errorf("synthesize: nil score provider")
	}

	out := cloneRecords(records)
	for i := range out {
		score, err := provider.DigitalAccessScore(out[i].Country)
		if err != nil {
			return nil, fmt.Errorf("score for %q from %s: %w", out[i].Country, provider.Name(), err)
		}
		out[i].DigitalAccessScore = score
		out[i].GDPImpact = GDPImpact(out[i].USDeficit2024, out[i].Population)
	}
	return out, nil
}
