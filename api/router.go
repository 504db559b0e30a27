package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/checkmarble/marble-todos/api/middleware"
	"github.com/checkmarble/marble-todos/infra"
	"github.com/checkmarble/marble-todos/utils"
)

// probes and scraping are kept out of the request logs and traces
var unloggedPaths = []string{"/liveness", "/metrics"}

func corsOption(ctx context.Context, conf Configuration) cors.Config {
	logger := utils.LoggerFromContext(ctx)
	allowedOrigins := []string{}
	for _, s := range conf.AllowedOrigins {
		parsedUrl, err := url.Parse(s)
		switch {
		case err != nil:
			logger.Error(
				"Failed to parse an allowed origin for CORS. Requests made from the browser from this url will be rejected.",
				"url", s)
		case !slices.Contains([]string{"http", "https"}, parsedUrl.Scheme):
			logger.Error(
				fmt.Sprintf("The url %s does not contain a scheme (http or https), so it cannot be used for CORS.", s),
				"url", s)
		default:
			u := url.URL{
				Scheme: parsedUrl.Scheme,
				Host:   parsedUrl.Host,
			}
			allowedOrigins = append(allowedOrigins, u.String())
		}
	}

	if conf.IsDevelopment() && conf.Port != "" {
		allowedOrigins = append(allowedOrigins, "http://localhost:"+conf.Port)
	}

	return cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{
			http.MethodOptions, http.MethodHead, http.MethodGet, http.MethodPost,
		},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With", "baggage", "sentry-trace"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

func InitRouterMiddlewares(
	ctx context.Context,
	conf Configuration,
	telemetryRessources infra.TelemetryRessources,
) *gin.Engine {
	if !conf.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := utils.LoggerFromContext(ctx)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	// same origin form posts need no CORS headers
	if corsConfig := corsOption(ctx, conf); len(corsConfig.AllowOrigins) > 0 {
		r.Use(cors.New(corsConfig))
	}
	r.Use(utils.StoreLoggerInContextMiddleware(logger))
	r.Use(middleware.NewRequestId())
	r.Use(middleware.NewLogging(
		middleware.WithIgnorePath(unloggedPaths),
		middleware.WithRequestLoggingLevel(conf.RequestLoggingLevel),
	))
	r.Use(middleware.NewRequestMetrics(middleware.WithIgnorePath(unloggedPaths)))
	r.Use(otelgin.Middleware(
		conf.AppName,
		otelgin.WithTracerProvider(telemetryRessources.TracerProvider),
		otelgin.WithPropagators(telemetryRessources.TextMapPropagator),
	))

	return r
}
