package tariffs

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Statistics summarizes a loaded dataset.
type Statistics struct {
	Rows                int    `json:"rows"`
	MatchedPopulation   int    `json:"matchedPopulation"`
	UnmatchedPopulation int    `json:"unmatchedPopulation"`
	UndefinedGDPImpact  int    `json:"undefinedGdpImpact"`
	GoodDigitalAccess   int    `json:"goodDigitalAccess"`
	PoorDigitalAccess   int    `json:"poorDigitalAccess"`
	ScoreSource         string `json:"scoreSource"`
}

// Manager holds the merged dataset. It is built once and never modified
// afterwards; every accessor returns a copy, so it is safe for concurrent use.
type Manager struct {
	config      Config
	tariffs     []TariffRecord
	population  []PopulationRecord
	records     []CountryRecord
	scoreSource string
	lastUpdated time.Time
}

// InitManager loads, cleans, merges and scores the files named in config.
// Any failure is returned and no dataset is produced.
func InitManager(config Config) (*Manager, error) {
	provider, err := config.scoreProvider()
	if err != nil {
		return nil, fmt.Errorf("error loading digital access scores: %w", err)
	}

	rawTariffs, err := LoadTariffsFile(config.TariffsPath)
	if err != nil {
		return nil, fmt.Errorf("error loading tariff data: %w", err)
	}
	rawPopulation, err := LoadPopulationFile(config.PopulationPath)
	if err != nil {
		return nil, fmt.Errorf("error loading population data: %w", err)
	}

	manager, err := build(rawTariffs, rawPopulation, provider)
	if err != nil {
		return nil, err
	}
	manager.config = config
	return manager, nil
}

// NewManager runs the pipeline over already opened sources.
func NewManager(tariffs, population io.Reader, provider ScoreProvider) (*Manager, error) {
	rawTariffs, err := LoadTariffs(tariffs, "tariffs")
	if err != nil {
		return nil, fmt.Errorf("error loading tariff data: %w", err)
	}
	rawPopulation, err := LoadPopulation(population, "population")
	if err != nil {
		return nil, fmt.Errorf("error loading population data: %w", err)
	}
	return build(rawTariffs, rawPopulation, provider)
}

func build(rawTariffs []RawTariffRow, rawPopulation []RawPopulationRow, provider ScoreProvider) (*Manager, error) {
	tariffs, err := CleanTariffRows(rawTariffs)
	if err != nil {
		return nil, fmt.Errorf("error cleaning tariff data: %w", err)
	}
	population, err := CleanPopulationRows(rawPopulation)
	if err != nil {
		return nil, fmt.Errorf("error cleaning population data: %w", err)
	}

	records, err := Synthesize(Merge(tariffs, population), provider)
	if err != nil {
		return nil, fmt.Errorf("error deriving metrics: %w", err)
	}

	return &Manager{
		tariffs:     tariffs,
		population:  population,
		records:     records,
		scoreSource: provider.Name(),
		lastUpdated: time.Now(),
	}, nil
}

// Records returns a copy of the merged dataset in tariff file order.
func (manager *Manager) Records() []CountryRecord {
	return cloneRecords(manager.records)
}

// FindCountry returns the record for an exact country name.
func (manager *Manager) FindCountry(country string) (CountryRecord, bool) {
	for _, r := range manager.records {
		if r.Country == country {
			return r.clone(), true
		}
	}
	return CountryRecord{}, false
}

// TariffRecords returns a copy of the cleaned tariff table.
func (manager *Manager) TariffRecords() []TariffRecord {
	return append([]TariffRecord(nil), manager.tariffs...)
}

// PopulationRecords returns a copy of the cleaned population table.
func (manager *Manager) PopulationRecords() []PopulationRecord {
	out := make([]PopulationRecord, len(manager.population))
	for i, p := range manager.population {
		if p.Population != nil {
			v := *p.Population
			p.Population = &v
		}
		out[i] = p
	}
	return out
}

func (manager *Manager) Len() int {
	return len(manager.records)
}

func (manager *Manager) ScoreSource() string {
	return manager.scoreSource
}

func (manager *Manager) LastUpdated() time.Time {
	return manager.lastUpdated
}

// Config reports the source files the dataset was loaded from.
func (manager *Manager) Config() Config {
	return manager.config
}

// Statistics counts join and metric outcomes over the dataset.
func (manager *Manager) Statistics() Statistics {
	stats := Statistics{Rows: len(manager.records), ScoreSource: manager.scoreSource}
	for _, r := range manager.records {
		if r.HasPopulation() {
			stats.MatchedPopulation++
		} else {
			stats.UnmatchedPopulation++
		}
		if !r.HasGDPImpact() {
			stats.UndefinedGDPImpact++
		}
		if r.HasGoodDigitalAccess() {
			stats.GoodDigitalAccess++
		} else {
			stats.PoorDigitalAccess++
		}
	}
	return stats
}

// LogStatistics writes the dataset summary to logger.
func (manager *Manager) LogStatistics(logger *slog.Logger) {
	if logger == nil {
		return
	}
	stats := manager.Statistics()
	logger.Info("dataset loaded",
		slog.String("component", "dataset"),
		slog.String("tariffs", manager.config.TariffsPath),
		slog.String("population", manager.config.PopulationPath),
		slog.Time("last_updated", manager.lastUpdated),
		slog.Int("rows", stats.Rows),
		slog.Int("matched_population", stats.MatchedPopulation),
		slog.Int("unmatched_population", stats.UnmatchedPopulation),
		slog.Int("undefined_gdp_impact", stats.UndefinedGDPImpact),
		slog.String("score_source", stats.ScoreSource))

	if manager.scoreSource == RandomStubName {
		logger.Warn("digital access scores are random placeholders and change on every start",
			slog.String("component", "dataset"))
	}
}
