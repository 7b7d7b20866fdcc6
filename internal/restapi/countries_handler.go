package restapi

import (
	"net/http"

	"tariffdash.digitalaccess.org/internal/models"
)

func (api *RestAPI) countriesHandler(w http.ResponseWriter, r *http.Request) {
	countries := models.NewCountryModels(api.Dataset.Records())
	api.sendResponse(w, r, models.NewListResponse(countries))
}
