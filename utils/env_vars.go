package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type envVarType interface {
	string | int | bool | float64
}

func parseEnv[T envVarType](name, raw string) (T, error) {
	var value T
	var parsed any
	var err error

	switch any(value).(type) {
	case string:
		parsed = raw
	case int:
		parsed, err = strconv.Atoi(raw)
	case bool:
		parsed, err = strconv.ParseBool(raw)
	case float64:
		parsed, err = strconv.ParseFloat(raw, 64)
	}
	if err != nil {
		return value, fmt.Errorf("environment variable %s is not valid: '%s' cannot be converted to %T", name, raw, value)
	}
	return parsed.(T), nil
}

// GetEnv returns the value of the environment variable, or the default value if it is not set.
// It panics if the variable is set to a value that cannot be converted to the expected type.
func GetEnv[T envVarType](envVarName string, defaultValue T) T {
	raw, ok := os.LookupEnv(envVarName)
	if !ok || raw == "" {
		return defaultValue
	}
	value, err := parseEnv[T](envVarName, raw)
	if err != nil {
		panic(err.Error())
	}
	return value
}

func GetRequiredEnv[T envVarType](envVarName string) T {
	raw, ok := os.LookupEnv(envVarName)
	if !ok || raw == "" {
		log.Fatalf("%s environment variable is required", envVarName)
	}
	value, err := parseEnv[T](envVarName, raw)
	if err != nil {
		log.Fatal(err.Error())
	}
	return value
}

func GetEnvDuration(envVarName string, defaultValue time.Duration) time.Duration {
	return time.Duration(GetEnv(envVarName, int(defaultValue/time.Second))) * time.Second
}
