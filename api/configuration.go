package api

import (
	"time"
)

type Configuration struct {
	Env                 string
	AppName             string
	AppVersion          string
	Port                string
	RequestLoggingLevel string
	AllowedOrigins      []string
	SessionSecret       string
	DefaultTimeout      time.Duration
	MaxFormSizeBytes    int64
	EnablePrometheus    bool
}

func (conf Configuration) IsDevelopment() bool {
	return conf.Env == "development"
}
