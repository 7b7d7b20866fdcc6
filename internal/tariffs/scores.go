package tariffs

import (
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"sync"
)

// RandomStubName is the Name of RandomScoreStub.
const RandomStubName = "random-stub"

// ScoreProvider supplies the DigitalAccessScore for a country.
// Implementations return NaN for countries they know nothing about.
type ScoreProvider interface {
	DigitalAccessScore(country string) (float64, error)
	Name() string
}

// RandomScoreStub is a placeholder ScoreProvider. It draws a uniform integer in
// [0,100) for every call, so scores differ between process starts and carry no
// information about digital infrastructure. It is safe for concurrent use.
type RandomScoreStub struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomScoreStub returns a stub drawing from src, or from a randomly seeded
// PCG source when src is nil.
func NewRandomScoreStub(src rand.Source) *RandomScoreStub {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &RandomScoreStub{rng: rand.New(src)}
}

func (s *RandomScoreStub) DigitalAccessScore(string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return float64(s.rng.IntN(100)), nil
}

func (s *RandomScoreStub) Name() string {
	return RandomStubName
}

// FixedScores is a deterministic ScoreProvider backed by a map.
type FixedScores map[string]float64

func (f FixedScores) DigitalAccessScore(country string) (float64, error) {
	if v, ok := f[country]; ok {
		return v, nil
	}
	return math.NaN(), nil
}

func (f FixedScores) Name() string {
	return "fixed"
}

// CSVScoreSource serves scores read from a Country;DigitalAccessScore file.
type CSVScoreSource struct {
	path   string
	scores map[string]float64
}

// LoadScoreSource reads a score file. Scores must lie in [0,100].
func LoadScoreSource(path string) (*CSVScoreSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FormatError{Source: path, Reason: "unreadable", Err: err}
	}
	defer f.Close() // nolint

	df, lines, err := readTable(f, path, scoreColumns)
	if err != nil {
		return nil, err
	}

	countries := df.Col(ColumnCountry).Records()
	values := df.Col(ColumnScore).Records()

	source := &CSVScoreSource{path: path, scores: make(map[string]float64, len(countries))}
	for i, country := range countries {
		line := lines[i]
		v, err := CleanAmount(values[i])
		if err != nil {
			return nil, annotate(err, ColumnScore, line)
		}
		if v < 0 || v > 100 {
			return nil, &ParseError{Column: ColumnScore, Line: line, Value: values[i], Err: errOutOfRange}
		}
		if _, dup := source.scores[country]; !dup {
			source.scores[country] = v
		}
	}
	return source, nil
}

func (s *CSVScoreSource) DigitalAccessScore(country string) (float64, error) {
	if v, ok := s.scores[country]; ok {
		return v, nil
	}
	return math.NaN(), nil
}

func (s *CSVScoreSource) Name() string {
	return fmt.Sprintf("csv:%s", s.path)
}

// Len returns the number of countries with a score.
func (s *CSVScoreSource) Len() int {
	return len(s.scores)
}
