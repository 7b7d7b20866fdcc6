package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// maxEventBytes bounds the relayout payload accepted by chart POSTs.
const maxEventBytes = 64 << 10

// requireDataset answers 503 until a dataset is attached to the application.
func requireDataset(api *RestAPI, finalHandler http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.Dataset == nil {
			api.serviceUnavailableResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// SetRoutes registers the JSON, image and export endpoints on router.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/charts.json", http.HandlerFunc(api.chartsHandler))
	router.Handler(http.MethodGet, "/api/charts/:id", requireDataset(api, api.chartHandler))
	router.Handler(http.MethodPost, "/api/charts/:id", requireDataset(api, api.chartHandler))
	router.Handler(http.MethodGet, "/api/chart-images/:id", requireDataset(api, api.chartImageHandler))
	router.Handler(http.MethodGet, "/api/countries.json", requireDataset(api, api.countriesHandler))
	router.Handler(http.MethodGet, "/api/status.json", requireDataset(api, api.statusHandler))
	router.Handler(http.MethodGet, "/api/export/:format", requireDataset(api, api.exportHandler))

	router.NotFound = http.HandlerFunc(api.sendNotFound)
	router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.sendError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})
}

// WithMiddleware wraps handler in the server middleware chain. The outermost
// layer assigns the request id so every log line can carry it.
func (api *RestAPI) WithMiddleware(handler http.Handler) http.Handler {
	if api.rateLimiter != nil {
		handler = api.rateLimiter.Handler(handler)
	}
	handler = CompressionMiddleware(handler)
	handler = securityHeaders(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	return RequestIDMiddleware(handler)
}
