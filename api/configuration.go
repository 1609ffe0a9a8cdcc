package api

import (
	"time"
)

const EnvDevelopment = "development"

type Configuration struct {
	Env                     string
	AppName                 string
	AppVersion              string
	Port                    string
	ApiKey                  string
	DefaultTimeout          time.Duration
	MaxEvidenceSizeMB       int
	LoginRateLimitPerMinute int
	CorsAllowedOrigins      []string
}

func (conf Configuration) IsDevelopment() bool {
	return conf.Env == EnvDevelopment
}

func (conf Configuration) maxEvidenceSizeBytes() int64 {
	return int64(conf.MaxEvidenceSizeMB) * 1024 * 1024
}
