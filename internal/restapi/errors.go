package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"tariffdash.digitalaccess.org/internal/logging"
	"tariffdash.digitalaccess.org/internal/models"
)

// errorResponse is the envelope of every failed request. Version 1 keeps
// error bodies distinguishable from data responses.
type errorResponse struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
}

func (api *RestAPI) sendError(w http.ResponseWriter, r *http.Request, status int, text string) {
	response := errorResponse{
		Code:        status,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        text,
		Version:     1,
	}

	setJSONResponseType(&w)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logging.LogError(api.Logger, "failed to encode error response", err,
			slog.Int("status", status),
			slog.String("component", "http_server"))
	}
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(api.Logger, "request failed", err,
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("request_id", logging.RequestIDFromContext(r.Context())),
		slog.String("component", "http_server"))

	api.sendError(w, r, http.StatusInternalServerError, "internal server error")
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	setJSONResponseType(&w)
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logging.LogError(api.Logger, "failed to encode validation error response", err,
			slog.String("component", "http_server"))
	}
}

func (api *RestAPI) requestTooLargeResponse(w http.ResponseWriter, r *http.Request) {
	api.sendError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
}

func (api *RestAPI) serviceUnavailableResponse(w http.ResponseWriter, r *http.Request) {
	api.sendError(w, r, http.StatusServiceUnavailable, "dataset not loaded")
}
