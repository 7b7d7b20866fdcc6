package webui

import (
	"bytes"
	"log/slog"
	"net/http"

	"tariffdash.digitalaccess.org/internal/logging"
	"tariffdash.digitalaccess.org/internal/models"
)

type indexData struct {
	Layout    models.PageLayout
	PlotlyURL string
}

func (webUI *WebUI) indexHandler(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := templates.ExecuteTemplate(&buf, "index.html", indexData{
		Layout:    webUI.Layout,
		PlotlyURL: PlotlyURL,
	})
	if err != nil {
		logging.LogError(webUI.Logger, "failed to render page", err,
			slog.String("component", "webui"))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
