package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"golang.org/x/sync/errgroup"
	"tariffdash.digitalaccess.org/internal/app"
	"tariffdash.digitalaccess.org/internal/appconf"
	"tariffdash.digitalaccess.org/internal/logging"
	"tariffdash.digitalaccess.org/internal/restapi"
	"tariffdash.digitalaccess.org/internal/tariffs"
	"tariffdash.digitalaccess.org/internal/webui"
)

// shutdownTimeout bounds how long in-flight requests may run after a signal.
const shutdownTimeout = 10 * time.Second

// options holds everything read from flags and the environment.
type options struct {
	port       int
	env        string
	tariffs    string
	population string
	scores     string
	layout     string
	rateLimit  int
	debugKeys  string
	logLevel   string
}

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := logging.NewStructuredLogger(os.Stdout, level)
	slog.SetDefault(logger)

	if err := run(opts, logger); err != nil {
		logging.LogError(logger, "server stopped", err, slog.String("component", "main"))
		os.Exit(1)
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var opts options

	fs.IntVar(&opts.port, "port", envInt("PORT", 4000), "API server port")
	fs.StringVar(&opts.env, "env", envString("APP_ENV", "development"), "Environment (development|test|production)")
	fs.StringVar(&opts.tariffs, "tariffs", envString("TARIFFS_CSV", "tariffs.csv"), "Path to the semicolon-delimited tariff file")
	fs.StringVar(&opts.population, "population", envString("POPULATION_CSV", "population.csv"), "Path to the semicolon-delimited population file")
	fs.StringVar(&opts.scores, "scores", envString("SCORES_CSV", ""), "Path to a Country;DigitalAccessScore file (random placeholder scores when empty)")
	fs.StringVar(&opts.layout, "layout", envString("LAYOUT_FILE", ""), "Path to a YAML page layout (built-in layout when empty)")
	fs.IntVar(&opts.rateLimit, "rate-limit", envInt("RATE_LIMIT", 20), "Requests per second per client (negative disables limiting)")
	fs.StringVar(&opts.debugKeys, "debug-keys", envString("DEBUG_KEYS", ""), "Comma separated keys that unlock /debug/")
	fs.StringVar(&opts.logLevel, "log-level", envString("LOG_LEVEL", "info"), "Log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.port <= 0 || opts.port > 65535 {
		return options{}, fmt.Errorf("invalid port %d", opts.port)
	}
	return opts, nil
}

func run(opts options, logger *slog.Logger) error {
	dataConfig := tariffs.Config{
		TariffsPath:    opts.tariffs,
		PopulationPath: opts.population,
		ScoresPath:     opts.scores,
	}

	dataset, err := tariffs.InitManager(dataConfig)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	dataset.LogStatistics(logger)

	layout, err := webui.LoadLayout(opts.layout)
	if err != nil {
		return fmt.Errorf("failed to load page layout: %w", err)
	}

	application := &app.Application{
		Config: app.Config{
			Port:      opts.port,
			Env:       appconf.EnvFlagToEnvironment(opts.env),
			RateLimit: opts.rateLimit,
			DebugKeys: splitKeys(opts.debugKeys),
		},
		DataConfig: dataConfig,
		Logger:     logger,
		Dataset:    dataset,
		Layout:     layout,
	}

	api := restapi.NewRestAPI(application)
	defer api.Shutdown()

	router := httprouter.New()
	api.SetRoutes(router)
	webui.NewWebUI(application).SetWebUIRoutes(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", opts.port),
		Handler:      api.WithMiddleware(router),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server",
			slog.String("addr", srv.Addr),
			slog.String("env", application.Config.Env.String()),
			slog.String("component", "main"))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server", slog.String("component", "main"))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func splitKeys(value string) []string {
	var keys []string
	for _, key := range strings.Split(value, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

func envString(name, def string) string {
	if value, ok := os.LookupEnv(name); ok && value != "" {
		return value
	}
	return def
}

func envInt(name string, def int) int {
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return n
}
