package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
)

type envVarType interface {
	string | int | bool | float64 | time.Duration
}

// GetEnv returns the parsed value of the environment variable, or defaultValue when it is unset or empty.
// It panics when the value cannot be parsed into T.
func GetEnv[T envVarType](envVarName string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVarName)
	if !ok || envValue == "" {
		return defaultValue
	}
	value, err := parseEnvVar[T](envValue)
	if err != nil {
		panic(fmt.Sprintf("Environment variable %s is not valid: %s", envVarName, err))
	}
	return value
}

func GetRequiredEnv[T envVarType](envVarName string) T {
	envValue, ok := os.LookupEnv(envVarName)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", envVarName)
	}
	value, err := parseEnvVar[T](envValue)
	if err != nil {
		log.Fatalf("%s environment variable is not valid: %s", envVarName, err)
	}
	return value
}

func parseEnvVar[T envVarType](envValue string) (T, error) {
	var value T
	switch v := any(&value).(type) {
	case *string:
		*v = envValue
	case *int:
		i, err := strconv.Atoi(envValue)
		if err != nil {
			return value, errors.Newf("'%s' is not an integer", envValue)
		}
		*v = i
	case *bool:
		b, err := strconv.ParseBool(envValue)
		if err != nil {
			return value, errors.Newf("'%s' cannot be converted to bool", envValue)
		}
		*v = b
	case *float64:
		f, err := strconv.ParseFloat(envValue, 64)
		if err != nil {
			return value, errors.Newf("'%s' is not a float", envValue)
		}
		*v = f
	case *time.Duration:
		d, err := time.ParseDuration(envValue)
		if err != nil {
			return value, errors.Newf("'%s' is not a duration", envValue)
		}
		*v = d
	}
	return value, nil
}
