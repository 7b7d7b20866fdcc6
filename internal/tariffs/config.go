package tariffs

// Config locates the source files of the dataset.
type Config struct {
	TariffsPath    string
	PopulationPath string
	// ScoresPath names a Country;DigitalAccessScore file. When empty the
	// RandomScoreStub is used.
	ScoresPath string
	// ScoreProvider, when set, takes precedence over ScoresPath.
	ScoreProvider ScoreProvider
}

func (config Config) scoreProvider() (ScoreProvider, error) {
	if config.ScoreProvider != nil {
		return config.ScoreProvider, nil
	}
	if config.ScoresPath != "" {
		source, err := LoadScoreSource(config.ScoresPath)
		if err != nil {
			return nil, err
		}
		return source, nil
	}
	return NewRandomScoreStub(nil), nil
}
