package models

import (
	"math"

	"tariffdash.digitalaccess.org/internal/tariffs"
)

// CountryModel is the JSON form of a merged country record. Absent or
// undefined values are null.
type CountryModel struct {
	Country            string   `json:"country"`
	USDeficit2024      float64  `json:"usDeficit2024"`
	AllegedTariffRate  float64  `json:"allegedTariffRate"`
	ResponseTariffRate float64  `json:"responseTariffRate"`
	Population         *float64 `json:"population"`
	DigitalAccessScore *float64 `json:"digitalAccessScore"`
	GDPImpact          *float64 `json:"gdpImpact"`
	GoodDigitalAccess  bool     `json:"goodDigitalAccess"`
}

// NewCountryModel converts a merged record
func NewCountryModel(r tariffs.CountryRecord) CountryModel {
	model := CountryModel{
		Country:            r.Country,
		USDeficit2024:      r.USDeficit2024,
		AllegedTariffRate:  r.AllegedTariffRate,
		ResponseTariffRate: r.ResponseTariffRate,
		DigitalAccessScore: finite(r.DigitalAccessScore),
		GDPImpact:          finite(r.GDPImpact),
		GoodDigitalAccess:  r.HasGoodDigitalAccess(),
	}
	if r.Population != nil {
		model.Population = finite(*r.Population)
	}
	return model
}

// NewCountryModels converts records, keeping their order
func NewCountryModels(records []tariffs.CountryRecord) []CountryModel {
	models := make([]CountryModel, 0, len(records))
	for _, r := range records {
		models = append(models, NewCountryModel(r))
	}
	return models
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
