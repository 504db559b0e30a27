package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
	"golang.org/x/sync/errgroup"

	"github.com/checkmarble/marble-todos/api"
	"github.com/checkmarble/marble-todos/infra"
	"github.com/checkmarble/marble-todos/repositories"
	"github.com/checkmarble/marble-todos/usecases"
	"github.com/checkmarble/marble-todos/utils"
)

func RunServer(config CompiledConfig) error {
	// This is where we read the environment variables and set up the configuration for the application.
	apiConfig := api.Configuration{
		Env:                 utils.GetEnv("ENV", "development"),
		AppName:             appName,
		AppVersion:          config.Version,
		Port:                utils.GetRequiredEnv[string]("PORT"),
		RequestLoggingLevel: utils.GetEnv("REQUEST_LOGGING_LEVEL", "all"),
		AllowedOrigins:      splitList(utils.GetEnv("ALLOWED_ORIGINS", "")),
		DefaultTimeout:      utils.GetEnvDuration("DEFAULT_TIMEOUT_SECOND", 5*time.Second),
		MaxFormSizeBytes:    int64(utils.GetEnv("MAX_FORM_SIZE_BYTES", 1<<20)),
		EnablePrometheus:    utils.GetEnv("ENABLE_PROMETHEUS", false),
	}
	pgConfig := pgConfigFromEnv()
	serverConfig := ServerConfig{
		loggingFormat: utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:     utils.GetEnv("SENTRY_DSN", ""),
		enableTracing: utils.GetEnv("ENABLE_TRACING", false),
		samplingRate:  utils.GetEnv("TRACING_SAMPLING_RATE", infra.DEFAULT_SAMPLING_RATE),
	}

	logger := utils.NewLogger(serverConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	secret, err := sessionSecret(apiConfig.Env)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}
	apiConfig.SessionSecret = secret

	infra.SetupSentry(serverConfig.sentryDsn, apiConfig.Env, config.Version)
	defer sentry.Flush(3 * time.Second)

	tracingConfig := infra.TelemetryConfiguration{
		ApplicationName: apiConfig.AppName,
		Enabled:         serverConfig.enableTracing,
		SamplingRate:    serverConfig.samplingRate,
	}
	telemetryRessources, err := infra.InitTelemetry(tracingConfig, config.Version)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		telemetryRessources = infra.NoopTelemetry()
	}

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		telemetryRessources.TracerProvider, pgConfig.MaxPoolConnections)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}
	defer pool.Close()

	repositories := repositories.NewRepositories(pool)
	uc := usecases.NewUsecases(repositories, usecases.WithApiVersion(config.Version))

	router := api.InitRouterMiddlewares(ctx, apiConfig, telemetryRessources)
	server, err := api.NewServer(router, apiConfig, uc)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(notify)
	g.Go(func() error {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port),
			slog.String("version", config.Version))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "Error while serving the app")
		}
		logger.InfoContext(ctx, "server returned")
		return nil
	})
	g.Go(func() error {
		// a signal, or the server failing to start
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "Error while shutting down the server")
		}
		if err := telemetryRessources.Shutdown(shutdownCtx); err != nil {
			utils.LogAndReportSentryError(ctx, errors.Wrap(err, "Error while flushing traces"))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}
	return nil
}
