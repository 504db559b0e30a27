package integration

import (
	"context"
	"fmt"
	"log"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/checkmarble/marble-todos/api"
	"github.com/checkmarble/marble-todos/infra"
	"github.com/checkmarble/marble-todos/repositories"
	"github.com/checkmarble/marble-todos/usecases"
	"github.com/checkmarble/marble-todos/utils"
)

const (
	testDbLifetime = 120 // seconds
	testUser       = "postgres"
	testPassword   = "pwd"
	testDbName     = "todos"
)

var (
	testServer *httptest.Server
	testDbPool *pgxpool.Pool
)

func TestMain(m *testing.M) {
	ctx := context.Background()
	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	pool, err := dockertest.NewPool("")
	if err == nil {
		err = pool.Client.Ping()
	}
	if err != nil {
		// with INTEGRATION_TESTS_REQUIRED=true a missing Docker daemon fails the run
		if utils.GetEnv("INTEGRATION_TESTS_REQUIRED", false) {
			log.Fatalf("Could not connect to Docker: %s", err)
		}
		log.Printf("Could not connect to Docker, skipping integration tests: %s", err)
		os.Exit(0)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15",
		Env: []string{
			fmt.Sprintf("POSTGRES_PASSWORD=%s", testPassword),
			fmt.Sprintf("POSTGRES_USER=%s", testUser),
			fmt.Sprintf("POSTGRES_DB=%s", testDbName),
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		// set AutoRemove to true so that stopped container goes away by itself
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}

	err = resource.Expire(testDbLifetime) // Tell docker to hard kill the container in testDbLifetime seconds
	if err != nil {
		log.Fatalf("Could not set container lifetime: %s", err)
	}

	pool.MaxWait = testDbLifetime * time.Second

	hostAndPort := resource.GetHostPort("5432/tcp") // docker container will bind to another port than 5432 if already taken
	connectionString := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		testUser, testPassword, hostAndPort, testDbName)
	pingPool, err := pgxpool.New(ctx, connectionString)
	if err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	if err = pool.Retry(func() error {
		return pingPool.Ping(ctx)
	}); err != nil {
		log.Fatalf("Could not connect to db: %s", err)
	}
	pingPool.Close()

	logger := utils.NewLogger("text")
	ctx = utils.StoreLoggerInContext(ctx, logger)

	pgConfig := infra.PgConfig{ConnectionString: connectionString, MaxPoolConnections: infra.DEFAULT_MAX_CONNECTIONS}
	if err := repositories.NewMigrater(pgConfig).Run(ctx); err != nil {
		log.Fatalf("Could not run migrations: %s", err)
	}
	// migrations are idempotent
	if err := repositories.NewMigrater(pgConfig).Run(ctx); err != nil {
		log.Fatalf("Could not run migrations a second time: %s", err)
	}

	telemetryRessources := infra.NoopTelemetry()
	dbPool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		telemetryRessources.TracerProvider, pgConfig.MaxPoolConnections)
	if err != nil {
		log.Fatalf("Could not create connection pool: %s", err)
	}

	testDbPool = dbPool
	uc := usecases.NewUsecases(repositories.NewRepositories(dbPool), usecases.WithApiVersion("test"))

	apiConfig := api.Configuration{
		Env:                 "development",
		AppName:             "marble-todos",
		AppVersion:          "test",
		RequestLoggingLevel: "all",
		SessionSecret:       "integration-test-secret",
		DefaultTimeout:      5 * time.Second,
	}
	router := api.InitRouterMiddlewares(ctx, apiConfig, telemetryRessources)
	handler, err := api.NewHandler(router, apiConfig, uc)
	if err != nil {
		log.Fatalf("Could not create the http handler: %s", err)
	}
	testServer = httptest.NewServer(handler)

	code := m.Run()

	testServer.Close()
	dbPool.Close()
	if err := pool.Purge(resource); err != nil {
		log.Printf("Could not purge resource: %s", err)
	}

	os.Exit(code)
}
