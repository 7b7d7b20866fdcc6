package webui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"tariffdash.digitalaccess.org/internal/app"
	"tariffdash.digitalaccess.org/internal/charts"
	"tariffdash.digitalaccess.org/internal/models"
)

// PlotlyURL is the browser build of Plotly loaded by the page.
const PlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

//go:embed layout.yaml
var defaultLayout []byte

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}

// DefaultLayout returns the page layout shipped with the binary.
func DefaultLayout() (models.PageLayout, error) {
	layout, err := models.ParsePageLayout(bytes.NewReader(defaultLayout))
	if err != nil {
		return models.PageLayout{}, fmt.Errorf("embedded layout: %w", err)
	}
	return layout, nil
}

// LoadLayout reads the layout at path, or the embedded default when path is
// empty, and checks that it only names known charts.
func LoadLayout(path string) (models.PageLayout, error) {
	var (
		layout models.PageLayout
		err    error
	)
	if path == "" {
		layout, err = DefaultLayout()
	} else {
		layout, err = models.LoadPageLayout(path)
	}
	if err != nil {
		return models.PageLayout{}, err
	}

	if err := layout.Validate(isChart); err != nil {
		return models.PageLayout{}, err
	}
	return layout, nil
}

func isChart(id string) bool {
	_, ok := charts.Lookup(id)
	return ok
}

func staticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
