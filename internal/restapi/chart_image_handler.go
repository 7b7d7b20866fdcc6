package restapi

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"gonum.org/v1/plot/vg"
	"tariffdash.digitalaccess.org/internal/charts"
	"tariffdash.digitalaccess.org/internal/logging"
	"tariffdash.digitalaccess.org/internal/utils"
)

// chartImageHandler renders a chart as PNG. width and height are optional
// query parameters in inches.
func (api *RestAPI) chartImageHandler(w http.ResponseWriter, r *http.Request) {
	chart, ok := api.lookupChart(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	width, fieldErrors := utils.ParseFloatParam(query, "width", float64(charts.DefaultImageWidth/vg.Inch), nil)
	height, fieldErrors := utils.ParseFloatParam(query, "height", float64(charts.DefaultImageHeight/vg.Inch), fieldErrors)
	if len(fieldErrors) == 0 {
		fieldErrors = utils.ValidateImageParams(width, height)
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	start := time.Now()
	spec := chart.Build(api.Dataset.Records(), nil)

	var buf bytes.Buffer
	if err := charts.Render(&buf, spec, vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch); err != nil {
		api.serverErrorResponse(w, r, fmt.Errorf("render %s: %w", chart.ID, err))
		return
	}

	logging.LogOperation(logging.FromContext(r.Context()), "chart_rendered",
		slog.String("chart", chart.ID),
		slog.Int("bytes", buf.Len()),
		slog.Duration("duration", time.Since(start)),
		slog.String("component", "charts"))

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		logging.LogError(api.Logger, "failed to write chart image", err,
			slog.String("chart", chart.ID),
			slog.String("component", "http_server"))
	}
}
