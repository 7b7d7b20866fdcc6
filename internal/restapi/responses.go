package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"tariffdash.digitalaccess.org/internal/logging"
	"tariffdash.digitalaccess.org/internal/models"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	data, err := json.Marshal(response)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	setJSONResponseType(&w)
	w.WriteHeader(response.Code)
	if _, err := w.Write(append(data, '\n')); err != nil {
		logging.LogError(api.Logger, "failed to write response", err,
			slog.String("path", r.URL.Path),
			slog.String("component", "http_server"))
	}
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	setJSONResponseType(&w)
	w.WriteHeader(http.StatusNotFound)

	response := models.ResponseModel{
		Code:        http.StatusNotFound,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "resource not found",
		Version:     2,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logging.LogError(api.Logger, "failed to encode not found response", err,
			slog.String("component", "http_server"))
	}
}

func setJSONResponseType(w *http.ResponseWriter) {
	(*w).Header().Set("Content-Type", "application/json")
}
