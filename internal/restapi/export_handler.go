package restapi

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"tariffdash.digitalaccess.org/internal/export"
	"tariffdash.digitalaccess.org/internal/logging"
	"tariffdash.digitalaccess.org/internal/utils"
)

// exportFilename is the download name without extension
const exportFilename = "tariff-impact"

func (api *RestAPI) exportHandler(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(utils.ExtractIDFromParams(r, "format"))
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"format": {err.Error()},
		})
		return
	}

	records := api.Dataset.Records()

	var buf bytes.Buffer
	if err := export.Write(&buf, format, records); err != nil {
		api.serverErrorResponse(w, r, fmt.Errorf("export %s: %w", format, err))
		return
	}

	logging.LogOperation(logging.FromContext(r.Context()), "export_written",
		slog.String("format", string(format)),
		slog.Int("rows", len(records)),
		slog.Int("bytes", buf.Len()),
		slog.String("component", "export"))

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename+"."+string(format)))
	if _, err := buf.WriteTo(w); err != nil {
		logging.LogError(api.Logger, "failed to write export", err,
			slog.String("format", string(format)),
			slog.String("component", "http_server"))
	}
}
