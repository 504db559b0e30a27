package cmd

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/checkmarble/marble-todos/infra"
	"github.com/checkmarble/marble-todos/utils"
)

const appName = "marble-todos"

type CompiledConfig struct {
	Version string
}

type ServerConfig struct {
	loggingFormat string
	sentryDsn     string
	enableTracing bool
	samplingRate  float64
}

func pgConfigFromEnv() infra.PgConfig {
	return infra.PgConfig{
		ConnectionString:   utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:           utils.GetEnv("PG_DATABASE", "todos"),
		Hostname:           utils.GetEnv("PG_HOSTNAME", ""),
		Password:           utils.GetEnv("PG_PASSWORD", ""),
		Port:               utils.GetEnv("PG_PORT", "5432"),
		User:               utils.GetEnv("PG_USER", ""),
		MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
		SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
}

func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// sessionSecret signs the flash cookies. Outside of development it must be provided, so that
// cookies stay valid across restarts and replicas.
func sessionSecret(env string) (string, error) {
	secret := utils.GetEnv("SESSION_SECRET", "")
	if secret != "" {
		return secret, nil
	}
	if env != "development" {
		return "", errors.New("SESSION_SECRET is required outside of the development environment")
	}
	return uuid.NewString(), nil
}
