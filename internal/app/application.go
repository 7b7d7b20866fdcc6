package app

import (
	"log/slog"

	"tariffdash.digitalaccess.org/internal/appconf"
	"tariffdash.digitalaccess.org/internal/models"
	"tariffdash.digitalaccess.org/internal/tariffs"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config     Config
	DataConfig tariffs.Config
	Logger     *slog.Logger
	Dataset    *tariffs.Manager
	Layout     models.PageLayout
}

// Config holds the server settings read from flags and the environment.
type Config struct {
	Port int
	Env  appconf.Environment
	// RateLimit is the number of requests per second allowed for one client.
	RateLimit int
	// DebugKeys unlock the /debug/ page. The page is disabled when empty.
	DebugKeys []string
}
