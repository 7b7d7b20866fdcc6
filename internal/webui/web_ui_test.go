package webui

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tariffdash.digitalaccess.org/internal/app"
	"tariffdash.digitalaccess.org/internal/charts"
	"tariffdash.digitalaccess.org/internal/tariffs"
)

func createTestWebUI(t *testing.T) *WebUI {
	t.Helper()

	dataset, err := tariffs.InitManager(tariffs.Config{
		TariffsPath:    filepath.Join("../../testdata", "tariffs.csv"),
		PopulationPath: filepath.Join("../../testdata", "population.csv"),
		ScoresPath:     filepath.Join("../../testdata", "scores.csv"),
	})
	require.NoError(t, err)

	layout, err := DefaultLayout()
	require.NoError(t, err)

	return NewWebUI(&app.Application{
		Config:  app.Config{DebugKeys: []string{"debug-key"}},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Dataset: dataset,
		Layout:  layout,
	})
}

func serveWebUI(t *testing.T, webUI *WebUI, path string) (*http.Response, string) {
	t.Helper()

	router := httprouter.New()
	webUI.SetWebUIRoutes(router)
	server := httptest.NewServer(router)
	defer server.Close()

	resp, err := http.Get(server.URL + path)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestDefaultLayoutCoversEveryChart(t *testing.T) {
	layout, err := DefaultLayout()
	require.NoError(t, err)

	assert.Equal(t, "US Tariffs 2025: Impact on Global Trade", layout.Title)
	require.Len(t, layout.Sections, len(charts.Charts()))
	for i, chart := range charts.Charts() {
		assert.Equal(t, chart.ID, layout.Sections[i].ChartID)
		assert.NotEmpty(t, layout.Sections[i].Explanation)
	}
	assert.Len(t, layout.Footer, 2)
}

func TestLoadLayout(t *testing.T) {
	t.Run("empty path uses default", func(t *testing.T) {
		layout, err := LoadLayout("")
		require.NoError(t, err)
		assert.Len(t, layout.Sections, 4)
	})

	t.Run("custom file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "layout.yaml")
		content := "title: Custom\nsections:\n  - chart: gdp-impact-chart\n    heading: GDP\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		layout, err := LoadLayout(path)
		require.NoError(t, err)
		assert.Equal(t, "Custom", layout.Title)
		assert.Len(t, layout.Sections, 1)
	})

	t.Run("unknown chart", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "layout.yaml")
		content := "title: Custom\nsections:\n  - chart: historical-trends-chart\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		_, err := LoadLayout(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "historical-trends-chart")
	})
}

func TestIndexHandler(t *testing.T) {
	resp, body := serveWebUI(t, createTestWebUI(t), "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, body, "<h1>US Tariffs 2025: Impact on Global Trade</h1>")
	assert.Contains(t, body, PlotlyURL)
	assert.Contains(t, body, "/static/dashboard.js")
	for _, chart := range charts.Charts() {
		assert.Contains(t, body, `id="`+chart.ID+`"`)
	}
	assert.Contains(t, body, "Created for educational purposes")
	assert.Less(t, strings.Index(body, "tariff-impact-chart"), strings.Index(body, "top-affected-chart"))
}

func TestIndexHandlerEscapesLayoutText(t *testing.T) {
	webUI := createTestWebUI(t)
	webUI.Layout.Title = "<script>alert(1)</script>"

	_, body := serveWebUI(t, webUI, "/")
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestStaticFiles(t *testing.T) {
	webUI := createTestWebUI(t)

	resp, body := serveWebUI(t, webUI, "/static/dashboard.js")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "plotly_relayout")
	assert.Contains(t, body, "/api/charts/")

	resp, _ = serveWebUI(t, webUI, "/static/dashboard.css")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/css")

	resp, _ = serveWebUI(t, webUI, "/static/missing.js")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDebugIndexHandler(t *testing.T) {
	webUI := createTestWebUI(t)

	t.Run("hidden without key", func(t *testing.T) {
		resp, _ := serveWebUI(t, webUI, "/debug/?dataType=records")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("hidden with wrong key", func(t *testing.T) {
		resp, _ := serveWebUI(t, webUI, "/debug/?dataType=records&key=nope")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	tests := []struct {
		dataType string
		title    string
		contains string
	}{
		{"records", "Merged Dataset - Records", "Lesotho"},
		{"tariffs", "Tariff File - Cleaned Rows", "European Union"},
		{"population", "Population File - Cleaned Rows", "Norway"},
		{"statistics", "Merged Dataset - Statistics", "MatchedPopulation"},
		{"sources", "Merged Dataset - Sources", "testdata/scores.csv"},
		{"layout", "Page Layout", "Top Affected Countries"},
		{"", "Choose a data type", "Please use one of the following"},
	}

	for _, tt := range tests {
		t.Run("dataType="+tt.dataType, func(t *testing.T) {
			resp, body := serveWebUI(t, webUI, "/debug/?key=debug-key&dataType="+tt.dataType)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, body, "<title>"+tt.title+"</title>")
			assert.Contains(t, body, tt.contains)
		})
	}
}
