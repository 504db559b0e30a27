package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MetricListsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marble_todos",
		Name:      "lists_created_total",
		Help:      "Number of todo lists created",
	})

	MetricListsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marble_todos",
		Name:      "lists_deleted_total",
		Help:      "Number of todo lists deleted",
	})

	MetricTodosCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marble_todos",
		Name:      "todos_created_total",
		Help:      "Number of todos created",
	})

	MetricTodoStatusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marble_todos",
		Name:      "todo_status_changes_total",
		Help:      "Number of todos marked completed or reverted, by new status",
	}, []string{"completed"})

	MetricValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marble_todos",
		Name:      "validation_failures_total",
		Help:      "Number of rejected list or todo names",
	}, []string{"entity"})

	MetricRequestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "marble_todos",
		Name:      "http_request_duration_seconds",
		Help:      "Latency of the HTTP requests by route and status",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
