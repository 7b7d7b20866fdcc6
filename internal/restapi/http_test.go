package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
	"tariffdash.digitalaccess.org/internal/app"
	"tariffdash.digitalaccess.org/internal/appconf"
	"tariffdash.digitalaccess.org/internal/logging"
	"tariffdash.digitalaccess.org/internal/models"
	"tariffdash.digitalaccess.org/internal/tariffs"
)

func testDataConfig() tariffs.Config {
	return tariffs.Config{
		TariffsPath:    filepath.Join("../../testdata", "tariffs.csv"),
		PopulationPath: filepath.Join("../../testdata", "population.csv"),
		ScoresPath:     filepath.Join("../../testdata", "scores.csv"),
	}
}

// createTestApi creates a new RestAPI instance with the fixture dataset loaded.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	dataConfig := testDataConfig()
	dataset, err := tariffs.InitManager(dataConfig)
	require.NoError(t, err)

	application := &app.Application{
		Config: app.Config{
			Env:       appconf.EnvFlagToEnvironment("test"),
			RateLimit: -1,
		},
		DataConfig: dataConfig,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Dataset:    dataset,
	}

	return &RestAPI{Application: application}
}

func newTestServer(t *testing.T, api *RestAPI) *httptest.Server {
	t.Helper()
	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	resp, body := serveApiAndRequest(t, api, http.MethodGet, endpoint, "")

	var response models.ResponseModel
	require.NoError(t, json.Unmarshal(body, &response), "body: %s", body)

	return resp, response
}

// serveApiAndRequest sends one request and returns the response with its raw body.
func serveApiAndRequest(t *testing.T, api *RestAPI, method, endpoint, body string) (*http.Response, []byte) {
	t.Helper()
	server := newTestServer(t, api)

	req, err := http.NewRequest(method, server.URL+endpoint, strings.NewReader(body))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

// entryOf returns data.entry of a decoded envelope.
func entryOf(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "entry should be an object")
	return entry
}

// listOf returns data.list of a decoded envelope.
func listOf(t *testing.T, model models.ResponseModel) []interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	list, ok := data["list"].([]interface{})
	require.True(t, ok, "list should be an array")
	return list
}
