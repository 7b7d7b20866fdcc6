package models

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLayout = `
title: US Tariffs 2025
subtitle: Impact on trade
sections:
  - chart: tariff-impact-chart
    heading: Tariff Impact by Country
    explanation: Bars per country.
  - chart: top-affected-chart
    heading: Top Affected Countries
    explanation: Ten largest deficits.
footer:
  - "Data Sources: US Trade Data"
`

func TestParsePageLayout(t *testing.T) {
	layout, err := ParsePageLayout(strings.NewReader(sampleLayout))
	require.NoError(t, err)

	assert.Equal(t, "US Tariffs 2025", layout.Title)
	assert.Equal(t, "Impact on trade", layout.Subtitle)
	require.Len(t, layout.Sections, 2)
	assert.Equal(t, "tariff-impact-chart", layout.Sections[0].ChartID)
	assert.Equal(t, "Top Affected Countries", layout.Sections[1].Heading)
	assert.Equal(t, []string{"Data Sources: US Trade Data"}, layout.Footer)
}

func TestParsePageLayoutErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		errMsg string
	}{
		{name: "empty", input: "", errMsg: "layout is empty"},
		{name: "unknown key", input: "title: x\ncolour: red\n", errMsg: "invalid layout"},
		{name: "missing title", input: "subtitle: x\n", errMsg: "title is required"},
		{name: "section without chart", input: "title: x\nsections:\n  - heading: y\n", errMsg: "has no chart"},
		{
			name:   "repeated chart",
			input:  "title: x\nsections:\n  - chart: a\n  - chart: a\n",
			errMsg: "repeats chart",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePageLayout(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestPageLayoutValidateKnownCharts(t *testing.T) {
	layout := PageLayout{Title: "x", Sections: []PageSection{{ChartID: "nope"}}}
	known := func(id string) bool { return id == "tariff-impact-chart" }

	err := layout.Validate(known)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown chart "nope"`)
}

func TestLoadPageLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleLayout), 0o600))

	layout, err := LoadPageLayout(path)
	require.NoError(t, err)
	assert.Len(t, layout.Sections, 2)

	_, err = LoadPageLayout(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
