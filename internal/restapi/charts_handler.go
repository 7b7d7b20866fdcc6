package restapi

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"tariffdash.digitalaccess.org/internal/charts"
	"tariffdash.digitalaccess.org/internal/logging"
	"tariffdash.digitalaccess.org/internal/models"
	"tariffdash.digitalaccess.org/internal/utils"
)

func (api *RestAPI) chartsHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewListResponse(charts.Charts()))
}

// chartHandler serves the figure of one chart. A POST carries the browser's
// relayout event, which is read and handed to the builder.
func (api *RestAPI) chartHandler(w http.ResponseWriter, r *http.Request) {
	chart, ok := api.lookupChart(w, r)
	if !ok {
		return
	}

	var event charts.Event
	if r.Method == http.MethodPost {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxEventBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				api.requestTooLargeResponse(w, r)
				return
			}
			api.validationErrorResponse(w, r, map[string][]string{
				"body": {"could not read request body"},
			})
			return
		}
		event = charts.Event(body)
	}

	if err := r.Context().Err(); err != nil {
		return
	}

	spec := chart.Build(api.Dataset.Records(), event)

	logging.FromContext(r.Context()).Debug("chart built",
		slog.String("chart", chart.ID),
		slog.Int("series", len(spec.Data)),
		slog.Int("event_bytes", len(event)),
		slog.String("component", "charts"))

	api.sendResponse(w, r, models.NewEntryResponse(spec))
}

// lookupChart validates the :id parameter and resolves it to a chart. It
// writes the error response itself when it returns false.
func (api *RestAPI) lookupChart(w http.ResponseWriter, r *http.Request) (charts.Chart, bool) {
	id := utils.ExtractIDFromParams(r, "id")
	if err := utils.ValidateID(id); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"id": {err.Error()},
		})
		return charts.Chart{}, false
	}

	chart, ok := charts.Lookup(id)
	if !ok {
		api.sendNotFound(w, r)
		return charts.Chart{}, false
	}
	return chart, true
}
