package app

import "net/http"

func (app *Application) RequestHasInvalidDebugKey(r *http.Request) bool {
	key := r.URL.Query().Get("key")
	return app.IsInvalidDebugKey(key)
}

func (app *Application) IsInvalidDebugKey(key string) bool {
	if key == "" {
		return true
	}

	for _, validKey := range app.Config.DebugKeys {
		if key == validKey {
			return false
		}
	}

	return true
}
