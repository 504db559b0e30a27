package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/checkmarble/marble-todos/usecases"
)

type Option func(*options)

func WithLocalTest(localTest bool) Option {
	return func(o *options) {
		o.localTest = localTest
	}
}

type options struct {
	localTest bool
}

func applyOptions(opts []Option) *options {
	o := &options{
		localTest: false,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NewHandler registers the routes on the router and returns the http handler serving them.
func NewHandler(router *gin.Engine, conf Configuration, uc usecases.Usecases) (http.Handler, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	todoListUsecase := uc.NewTodoListUsecase()
	handler := NewTodoListHandler(
		&todoListUsecase,
		NewFlashSession(conf.SessionSecret, !conf.IsDevelopment()),
		renderer,
	)
	addRoutes(router, conf, uc, handler)

	return h2c.NewHandler(router, &http2.Server{}), nil
}

func NewServer(router *gin.Engine, conf Configuration, uc usecases.Usecases, opts ...Option) (*http.Server, error) {
	o := applyOptions(opts)

	handler, err := NewHandler(router, conf, uc)
	if err != nil {
		return nil, err
	}

	var host string
	if o.localTest {
		host = "localhost"
	} else {
		host = "0.0.0.0"
	}

	// Add 5 seconds to the server timeout to gracefully handle the timeout in our code
	maxTimeout := conf.DefaultTimeout + 5*time.Second

	return &http.Server{
		Addr:         fmt.Sprintf("%s:%s", host, conf.Port),
		WriteTimeout: maxTimeout,
		ReadTimeout:  maxTimeout,
		IdleTimeout:  maxTimeout,
		Handler:      handler,
	}, nil
}
