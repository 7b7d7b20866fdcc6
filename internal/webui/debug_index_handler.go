package webui

import (
	"bytes"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

var debugDataTypes = []string{"records", "tariffs", "population", "statistics", "sources", "layout"}

type debugData struct {
	Title string
	Pre   string
	Key   string
	Links []string
}

func writeDebugData(w http.ResponseWriter, key, title string, data interface{}) {
	var buf bytes.Buffer
	err := templates.ExecuteTemplate(&buf, "debug_index.html", debugData{
		Title: title,
		Pre:   spew.Sdump(data),
		Key:   key,
		Links: debugDataTypes,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// debugIndexHandler dumps the in-memory data. It answers 404 to requests
// without a configured debug key so the page stays hidden.
func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	if webUI.RequestHasInvalidDebugKey(r) {
		http.NotFound(w, r)
		return
	}

	key := r.URL.Query().Get("key")
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	if webUI.Dataset == nil && dataType != "layout" {
		dataType = ""
	}

	switch dataType {
	case "records":
		data = webUI.Dataset.Records()
		title = "Merged Dataset - Records"
	case "tariffs":
		data = webUI.Dataset.TariffRecords()
		title = "Tariff File - Cleaned Rows"
	case "population":
		data = webUI.Dataset.PopulationRecords()
		title = "Population File - Cleaned Rows"
	case "statistics":
		data = webUI.Dataset.Statistics()
		title = "Merged Dataset - Statistics"
	case "sources":
		data = webUI.Dataset.Config()
		title = "Merged Dataset - Sources"
	case "layout":
		data = webUI.Layout
		title = "Page Layout"
	default:
		data = map[string]string{
			"error": "Please use one of the following: records, tariffs, population, statistics, sources, layout.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, key, title, data)
}
