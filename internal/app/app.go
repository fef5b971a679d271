package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"countrygdp/internal/adapters/cache"
	"countrygdp/internal/adapters/httpclient"
	"countrygdp/internal/adapters/postgres"
	"countrygdp/internal/api"
	"countrygdp/internal/config"
	"countrygdp/internal/country"
	"countrygdp/internal/country/handler"
	"countrygdp/internal/imaging"
	"countrygdp/internal/platform/db"
	httpserver "countrygdp/internal/platform/http"

	"github.com/sirupsen/logrus"
)

// Run wires the application components and starts the HTTP server.
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, migrations)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// Schema first, then the pool
	if err = db.Migrate(appCfg.DbServer); err != nil {
		logrus.WithError(err).Error("Error applying migrations")
		return err
	}
	logrus.Info("✅ Migrations applied")

	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// External clients
	countriesClient := httpclient.NewCountriesClient(baseHTTPClient, appCfg.Upstream.CountriesURL)
	ratesClient := httpclient.NewExchangeRateClient(baseHTTPClient, appCfg.Upstream.RatesURL)

	// Repository and lookup cache
	countryRepo := postgres.NewCountryRepository(pool)
	countryCache, err := cache.NewCountryCache(appCfg.Cache.MaxItems)
	if err != nil {
		logrus.WithError(err).Error("Failed to create country cache")
		return err
	}
	defer countryCache.Close()

	// Renderer and service
	renderer := imaging.NewRenderer(appCfg.Cache.Dir)
	estimator := country.NewEstimator(nil)
	countryService := country.NewService(countriesClient, ratesClient, countryRepo, countryCache, renderer, estimator)

	// Handlers and router
	countryHandler := handler.NewCountryHandler(countryService)
	router := api.NewRouter(countryHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
