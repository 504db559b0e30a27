package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkmarble/marble-todos/utils"
)

func newTestRouter(buf *bytes.Buffer, options ...LoggerOption) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(utils.StoreLoggerInContextMiddleware(utils.NewLoggerWithWriter("text", buf)))
	router.Use(NewRequestId())
	router.Use(NewLogging(options...))
	router.GET("/liveness", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/lists", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	return router
}

func serve(router *gin.Engine, path string, headers map[string]string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		request.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, request)
	return w
}

func TestLogging(t *testing.T) {
	t.Run("logs the request with its request id", func(t *testing.T) {
		var buf bytes.Buffer
		router := newTestRouter(&buf)

		w := serve(router, "/lists", nil)

		requestId := w.Header().Get(RequestIdHeader)
		_, err := uuid.Parse(requestId)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "GET /lists")
		assert.Contains(t, buf.String(), "status=200")
		assert.Contains(t, buf.String(), "request_id="+requestId)
	})

	t.Run("ignored paths are not logged", func(t *testing.T) {
		var buf bytes.Buffer
		router := newTestRouter(&buf, WithIgnorePath([]string{"/liveness"}))

		serve(router, "/liveness", nil)

		assert.Empty(t, buf.String())
	})

	t.Run("errors only level skips successful requests", func(t *testing.T) {
		var buf bytes.Buffer
		router := newTestRouter(&buf, WithRequestLoggingLevel(RequestLoggingLevelErrors))

		serve(router, "/lists", nil)
		assert.Empty(t, buf.String())

		serve(router, "/boom", nil)
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "status=500")
	})
}

func TestRequestId(t *testing.T) {
	var buf bytes.Buffer
	router := newTestRouter(&buf)

	t.Run("keeps a valid incoming id", func(t *testing.T) {
		incoming := uuid.NewString()
		w := serve(router, "/lists", map[string]string{RequestIdHeader: incoming})
		assert.Equal(t, incoming, w.Header().Get(RequestIdHeader))
	})

	t.Run("id is available to the handlers", func(t *testing.T) {
		router := newTestRouter(&buf)
		var fromContext string
		router.GET("/whoami", func(c *gin.Context) {
			fromContext = utils.RequestIdFromContext(c.Request.Context())
		})

		w := serve(router, "/whoami", nil)

		assert.NotEmpty(t, fromContext)
		assert.Equal(t, w.Header().Get(RequestIdHeader), fromContext)
	})

	t.Run("replaces an invalid incoming id", func(t *testing.T) {
		w := serve(router, "/lists", map[string]string{RequestIdHeader: "not-an-id"})
		assert.NotEqual(t, "not-an-id", w.Header().Get(RequestIdHeader))
		_, err := uuid.Parse(w.Header().Get(RequestIdHeader))
		assert.NoError(t, err)
	})
}
