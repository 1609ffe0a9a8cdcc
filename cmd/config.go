package cmd

import (
	"strings"
	"time"

	"github.com/police-department/evidence-manager/api"
	"github.com/police-department/evidence-manager/infra"
	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/usecases"
	"github.com/police-department/evidence-manager/utils"
)

const appName = "evidence-manager"

// Version is set at build time with -ldflags "-X .../cmd.Version=<version>".
var Version = "dev"

type ServerConfig struct {
	evidenceBucketUrl string
	jwtSigningKey     string
	jwtSigningKeyFile string
	loggingFormat     string
	sentryDsn         string
	tokenLifetime     time.Duration
}

func pgConfigFromEnv() infra.PgConfig {
	return infra.PgConfig{
		ConnectionString:   utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:           "evidence_manager",
		Hostname:           utils.GetEnv("PG_HOSTNAME", ""),
		Password:           utils.GetEnv("PG_PASSWORD", ""),
		Port:               utils.GetEnv("PG_PORT", "5432"),
		User:               utils.GetEnv("PG_USER", ""),
		MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
		SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
}

func apiConfigFromEnv() api.Configuration {
	return api.Configuration{
		Env:                     utils.GetEnv("ENV", api.EnvDevelopment),
		AppName:                 appName,
		AppVersion:              Version,
		Port:                    utils.GetRequiredEnv[string]("PORT"),
		ApiKey:                  utils.GetEnv("API_KEY", ""),
		DefaultTimeout:          time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 10)) * time.Second,
		MaxEvidenceSizeMB:       utils.GetEnv("MAX_EVIDENCE_SIZE_MB", 10),
		LoginRateLimitPerMinute: utils.GetEnv("LOGIN_RATE_LIMIT_PER_MINUTE", 10),
		CorsAllowedOrigins:      splitList(utils.GetEnv("CORS_ALLOWED_ORIGINS", "")),
	}
}

func serverConfigFromEnv() ServerConfig {
	return ServerConfig{
		evidenceBucketUrl: utils.GetEnv("EVIDENCE_BUCKET_URL", usecases.DefaultEvidenceBucketUrl),
		jwtSigningKey:     utils.GetEnv("AUTHENTICATION_JWT_SIGNING_KEY", ""),
		jwtSigningKeyFile: utils.GetEnv("AUTHENTICATION_JWT_SIGNING_KEY_FILE", ""),
		loggingFormat:     utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:         utils.GetEnv("SENTRY_DSN", ""),
		tokenLifetime:     time.Duration(utils.GetEnv("TOKEN_LIFETIME_MINUTE", 120)) * time.Minute,
	}
}

func seedConfigFromEnv() models.SeedConfiguration {
	return models.SeedConfiguration{
		CreateAdminEmail:    utils.GetEnv("CREATE_ADMIN_EMAIL", ""),
		CreateAdminPassword: utils.GetEnv("CREATE_ADMIN_PASSWORD", ""),
		SeedOfficersFile:    utils.GetEnv("SEED_OFFICERS_FILE", ""),
	}
}

func telemetryConfigFromEnv() infra.TelemetryConfiguration {
	return infra.TelemetryConfiguration{
		// the otlp exporter reads OTEL_EXPORTER_OTLP_ENDPOINT itself
		Enabled:         utils.GetEnv("ENABLE_TRACING", false),
		ApplicationName: appName,
		ApiVersion:      Version,
	}
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
