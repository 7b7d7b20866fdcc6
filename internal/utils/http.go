package utils

import (
	"net"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractIDFromParams retrieves a parameter value from the request context and removes
// a trailing ".json" or ".png" extension.
func ExtractIDFromParams(r *http.Request, paramName string) string {
	params := httprouter.ParamsFromContext(r.Context())
	rawID := params.ByName(paramName)
	return TrimExtension(rawID, ".json", ".png")
}

// TrimExtension removes the first matching suffix from id.
func TrimExtension(id string, extensions ...string) string {
	for _, ext := range extensions {
		if trimmed, ok := strings.CutSuffix(id, ext); ok {
			return trimmed
		}
	}
	return id
}

// ClientIP returns the host part of the request's remote address.
// Proxy headers are not trusted.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
