package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, splitList(" https://a.test, ,https://b.test "))
}

func TestApiConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("API_KEY", "secret")
	t.Setenv("DEFAULT_TIMEOUT_SECOND", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://police.test")

	conf := apiConfigFromEnv()

	assert.Equal(t, "8080", conf.Port)
	assert.False(t, conf.IsDevelopment())
	assert.Equal(t, "secret", conf.ApiKey)
	assert.Equal(t, 3*time.Second, conf.DefaultTimeout)
	assert.Equal(t, 10, conf.MaxEvidenceSizeMB)
	assert.Equal(t, []string{"https://police.test"}, conf.CorsAllowedOrigins)
}

func TestServerConfigFromEnv_defaults(t *testing.T) {
	conf := serverConfigFromEnv()

	assert.Equal(t, "file://./evidences?create_dir=true", conf.evidenceBucketUrl)
	assert.Equal(t, 2*time.Hour, conf.tokenLifetime)
	assert.Equal(t, "text", conf.loggingFormat)
}
