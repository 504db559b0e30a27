package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/checkmarble/marble-todos/infra"
)

func TestCorsOption(t *testing.T) {
	conf := Configuration{
		Env:            "development",
		Port:           "4567",
		AllowedOrigins: []string{"https://todos.example.com/some/path", "todos.example.com", "://bad"},
	}

	config := corsOption(context.Background(), conf)

	assert.Equal(t, []string{"https://todos.example.com", "http://localhost:4567"}, config.AllowOrigins)
	assert.True(t, config.AllowCredentials)
}

func TestInitRouterMiddlewares_without_allowed_origins(t *testing.T) {
	conf := Configuration{Env: "production", AppName: "marble-todos"}

	var r http.Handler
	assert.NotPanics(t, func() {
		r = InitRouterMiddlewares(context.Background(), conf, infra.NoopTelemetry())
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/anything", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}
