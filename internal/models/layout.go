package models

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// PageSection is one chart block of the dashboard page
type PageSection struct {
	ChartID     string `yaml:"chart" json:"chart"`
	Heading     string `yaml:"heading" json:"heading"`
	Explanation string `yaml:"explanation" json:"explanation"`
}

// PageLayout holds the static text around the charts
type PageLayout struct {
	Title    string        `yaml:"title" json:"title"`
	Subtitle string        `yaml:"subtitle" json:"subtitle"`
	Sections []PageSection `yaml:"sections" json:"sections"`
	Footer   []string      `yaml:"footer" json:"footer"`
}

// ParsePageLayout decodes a YAML layout. Unknown keys are rejected.
func ParsePageLayout(r io.Reader) (PageLayout, error) {
	var layout PageLayout
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&layout); err != nil {
		if errors.Is(err, io.EOF) {
			return PageLayout{}, errors.New("layout is empty")
		}
		return PageLayout{}, fmt.Errorf("invalid layout: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return PageLayout{}, err
	}
	return layout, nil
}

// LoadPageLayout reads a layout file from disk
func LoadPageLayout(path string) (PageLayout, error) {
	f, err := os.Open(path)
	if err != nil {
		return PageLayout{}, fmt.Errorf("error opening layout: %w", err)
	}
	defer func() { _ = f.Close() }()

	layout, err := ParsePageLayout(f)
	if err != nil {
		return PageLayout{}, fmt.Errorf("%s: %w", path, err)
	}
	return layout, nil
}

// Validate checks that every section names a chart exactly once.
// knownChart, when given, restricts the names that are accepted.
func (layout PageLayout) Validate(knownChart ...func(string) bool) error {
	if layout.Title == "" {
		return errors.New("layout title is required")
	}
	seen := make(map[string]bool, len(layout.Sections))
	for i, section := range layout.Sections {
		if section.ChartID == "" {
			return fmt.Errorf("layout section %d has no chart", i+1)
		}
		if seen[section.ChartID] {
			return fmt.Errorf("layout section %d repeats chart %q", i+1, section.ChartID)
		}
		for _, known := range knownChart {
			if !known(section.ChartID) {
				return fmt.Errorf("layout section %d names unknown chart %q", i+1, section.ChartID)
			}
		}
		seen[section.ChartID] = true
	}
	return nil
}
