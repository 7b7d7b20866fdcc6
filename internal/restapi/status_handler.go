package restapi

import (
	"net/http"

	"tariffdash.digitalaccess.org/internal/charts"
	"tariffdash.digitalaccess.org/internal/models"
)

func (api *RestAPI) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := models.NewStatusModel(api.Dataset.Statistics(), api.Dataset.LastUpdated(), len(charts.Charts()))
	api.sendResponse(w, r, models.NewEntryResponse(status))
}
