package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{}, splitList(""))
	assert.Equal(t, []string{"https://todos.example.com", "http://localhost:3000"},
		splitList(" https://todos.example.com, ,http://localhost:3000 "))
}

func TestSessionSecret(t *testing.T) {
	t.Run("from the environment", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "s3cret")
		secret, err := sessionSecret("production")
		require.NoError(t, err)
		assert.Equal(t, "s3cret", secret)
	})

	t.Run("generated in development", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "")
		secret, err := sessionSecret("development")
		require.NoError(t, err)
		assert.NotEmpty(t, secret)
	})

	t.Run("required elsewhere", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "")
		_, err := sessionSecret("production")
		assert.Error(t, err)
	})
}

func TestPgConfigFromEnv(t *testing.T) {
	t.Setenv("PG_CONNECTION_STRING", "")
	t.Setenv("PG_HOSTNAME", "db")
	t.Setenv("PG_USER", "todos")
	t.Setenv("PG_PASSWORD", "pwd")
	t.Setenv("PG_DATABASE", "")
	t.Setenv("PG_PORT", "")
	t.Setenv("PG_SSL_MODE", "")
	t.Setenv("PG_MAX_POOL_SIZE", "")

	config := pgConfigFromEnv()

	assert.Equal(t, "host=db port=5432 user=todos password=pwd database=todos sslmode=prefer",
		config.GetConnectionString())
	assert.Equal(t, 10, config.MaxPoolConnections)
}
