package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (webUI *WebUI) SetWebUIRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/", webUI.indexHandler)
	router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
	router.ServeFiles("/static/*filepath", http.FS(staticFiles()))
}
