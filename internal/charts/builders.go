package charts

import (
	"cmp"
	"encoding/json"
	"slices"

	"tariffdash.digitalaccess.org/internal/tariffs"
)

// Chart identifiers, shared with the page that hosts them.
const (
	TariffImpactID            = "tariff-impact-chart"
	DeficitVsInfrastructureID = "deficit-infrastructure-chart"
	GDPImpactID               = "gdp-impact-chart"
	TopAffectedID             = "top-affected-chart"
)

const (
	colorGood = "#3498db"
	colorPoor = "#e74c3c"

	// TopAffectedCount is how many countries TopAffected shows.
	TopAffectedCount = 10

	// scatterSizeMax is the marker diameter, in pixels, of the largest population.
	scatterSizeMax = 20
)

// Event is the interaction payload sent by the browser when a chart is
// zoomed, panned or reset. Builders accept it and do not read it.
type Event json.RawMessage

// Builder turns the dataset into a chart. Builders never modify records.
type Builder func(records []tariffs.CountryRecord, ev Event) Spec

// Chart pairs a builder with its identifier and title.
type Chart struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Build Builder `json:"-"`
}

var catalog = []Chart{
	{ID: TariffImpactID, Title: "US Trade Deficit by Country (2024)", Build: TariffImpact},
	{ID: DeficitVsInfrastructureID, Title: "Trade Deficit vs. Digital Infrastructure Access", Build: DeficitVsInfrastructure},
	{ID: GDPImpactID, Title: "Tariff Impact on GDP per Capita", Build: GDPImpact},
	{ID: TopAffectedID, Title: "Top 10 Most Affected Countries by Tariffs", Build: TopAffected},
}

// Charts lists every chart in page order.
func Charts() []Chart {
	return slices.Clone(catalog)
}

// Lookup finds a chart by identifier.
func Lookup(id string) (Chart, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Chart{}, false
}

// TariffImpact shows each country's 2024 deficit, split into good and poor
// digital access groups.
func TariffImpact(records []tariffs.CountryRecord, _ Event) Spec {
	good, poor := PartitionByAccess(records)
	return Spec{
		Data: []Series{
			bars("Good Digital Access", colorGood, good, deficit),
			bars("Poor Digital Access", colorPoor, poor, deficit),
		},
		Layout: Layout{
			Title:      "US Trade Deficit by Country (2024)",
			XAxisTitle: "Country",
			YAxisTitle: "Trade Deficit (Millions USD)",
			BarMode:    "group",
			XTickAngle: 45,
		},
	}
}

// DeficitVsInfrastructure plots the deficit against the digital access score,
// with markers sized by population and colored by score.
func DeficitVsInfrastructure(records []tariffs.CountryRecord, _ Event) Spec {
	n := len(records)
	x := make([]float64, n)
	y := make([]float64, n)
	size := make([]Number, n)
	text := make([]string, n)

	maxPopulation := 0.0
	for i, r := range records {
		x[i] = r.DigitalAccessScore
		y[i] = r.USDeficit2024
		text[i] = r.Country
		if r.Population == nil {
			size[i] = Number(nan())
			continue
		}
		size[i] = Number(*r.Population)
		maxPopulation = max(maxPopulation, *r.Population)
	}

	sizeRef := 0.0
	if maxPopulation > 0 {
		sizeRef = maxPopulation / (scatterSizeMax * scatterSizeMax)
	}

	scores := numbers(x)
	return Spec{
		Data: []Series{{
			Type:        KindScatter,
			Name:        "Countries",
			X:           scores,
			Y:           numbers(y),
			Text:        text,
			ColorValues: slices.Clone(scores),
			ColorScale:  "Plasma",
			Size:        size,
			SizeRef:     sizeRef,
		}},
		Layout: Layout{
			Title:      "Trade Deficit vs. Digital Infrastructure Access",
			XAxisTitle: "Digital Infrastructure Access Score",
			YAxisTitle: "Trade Deficit (Millions USD)",
		},
	}
}

// GDPImpact shows the deficit per head of population for each access group.
// Countries without a population figure get an empty bar.
func GDPImpact(records []tariffs.CountryRecord, _ Event) Spec {
	good, poor := PartitionByAccess(records)
	return Spec{
		Data: []Series{
			bars("Good Digital Access", colorGood, good, gdpImpact),
			bars("Poor Digital Access", colorPoor, poor, gdpImpact),
		},
		Layout: Layout{
			Title:      "Tariff Impact on GDP per Capita",
			XAxisTitle: "Country",
			YAxisTitle: "GDP Impact per Capita (USD)",
			BarMode:    "group",
			XTickAngle: 45,
		},
	}
}

// TopAffected compares alleged and response tariff rates for the countries
// with the largest deficits.
func TopAffected(records []tariffs.CountryRecord, _ Event) Spec {
	top := TopByDeficit(records, TopAffectedCount)
	return Spec{
		Data: []Series{
			bars("Alleged Tariffs", colorPoor, top, alleged),
			bars("Response Tariffs", colorGood, top, response),
		},
		Layout: Layout{
			Title:      "Top 10 Most Affected Countries by Tariffs",
			XAxisTitle: "Country",
			YAxisTitle: "Tariff Rate (%)",
			BarMode:    "group",
			XTickAngle: 45,
		},
	}
}

// PartitionByAccess splits records into good (score >= 50) and poor access,
// keeping input order. Every record lands in exactly one group.
func PartitionByAccess(records []tariffs.CountryRecord) (good, poor []tariffs.CountryRecord) {
	for _, r := range records {
		if r.HasGoodDigitalAccess() {
			good = append(good, r)
		} else {
			poor = append(poor, r)
		}
	}
	return good, poor
}

// TopByDeficit returns the n records with the largest deficit, largest first.
// Ties keep input order.
func TopByDeficit(records []tariffs.CountryRecord, n int) []tariffs.CountryRecord {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b tariffs.CountryRecord) int {
		return cmp.Compare(b.USDeficit2024, a.USDeficit2024)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func deficit(r tariffs.CountryRecord) float64   { return r.USDeficit2024 }
func gdpImpact(r tariffs.CountryRecord) float64 { return r.GDPImpact }
func alleged(r tariffs.CountryRecord) float64   { return r.AllegedTariffRate }
func response(r tariffs.CountryRecord) float64  { return r.ResponseTariffRate }

func bars(name, color string, records []tariffs.CountryRecord, value func(tariffs.CountryRecord) float64) Series {
	categories := make([]string, len(records))
	y := make([]Number, len(records))
	for i, r := range records {
		categories[i] = r.Country
		y[i] = Number(value(r))
	}
	return Series{
		Type:       KindBar,
		Name:       name,
		Categories: categories,
		Y:          y,
		Color:      color,
	}
}
