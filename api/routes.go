package api

import (
	"net/http"

	limits "github.com/gin-contrib/size"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	timeout "github.com/vearne/gin-timeout"

	"github.com/checkmarble/marble-todos/usecases"
)

const defaultMaxFormSize = 1 << 20 // 1MB

func timeoutMiddleware(conf Configuration) gin.HandlerFunc {
	return timeout.Timeout(
		timeout.WithTimeout(conf.DefaultTimeout),
		timeout.WithErrorHttpCode(http.StatusRequestTimeout),
		timeout.WithDefaultMsg("Request timeout"),
	)
}

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases, handler *TodoListHandler) {
	r.GET("/liveness", handleLivenessProbe(uc))
	if conf.EnablePrometheus {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	r.StaticFS("/static", staticFS())

	maxFormSize := conf.MaxFormSizeBytes
	if maxFormSize <= 0 {
		maxFormSize = defaultMaxFormSize
	}

	router := r.Group("/")
	router.Use(limits.RequestSizeLimiter(maxFormSize))
	if conf.DefaultTimeout > 0 {
		router.Use(timeoutMiddleware(conf))
	}

	router.GET("/", handler.RedirectToLists)

	router.GET("/lists", handler.GetLists)
	router.GET("/lists/new", handler.NewList)
	router.POST("/lists", handler.CreateList)
	router.GET("/lists/:list_id", handler.GetList)
	router.GET("/lists/:list_id/edit", handler.EditList)
	router.POST("/lists/:list_id", handler.RenameList)
	router.POST("/lists/:list_id/delete", handler.DeleteList)

	router.POST("/lists/:list_id/todos", handler.CreateTodo)
	router.POST("/lists/:list_id/todos/:todo_id", handler.UpdateTodoStatus)
	router.POST("/lists/:list_id/todos/:todo_id/delete", handler.DeleteTodo)
	router.POST("/lists/:list_id/all_completed", handler.CompleteAllTodos)

	r.NoRoute(handler.NotFound)
}
