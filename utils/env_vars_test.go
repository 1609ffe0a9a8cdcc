package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("default when unset", func(t *testing.T) {
		assert.Equal(t, "development", GetEnv("EVIDENCE_TEST_UNSET", "development"))
		assert.Equal(t, 60, GetEnv("EVIDENCE_TEST_UNSET", 60))
	})

	t.Run("default when empty", func(t *testing.T) {
		t.Setenv("EVIDENCE_TEST_EMPTY", "")
		assert.True(t, GetEnv("EVIDENCE_TEST_EMPTY", true))
	})

	t.Run("parsed values", func(t *testing.T) {
		t.Setenv("EVIDENCE_TEST_STRING", "json")
		t.Setenv("EVIDENCE_TEST_INT", "42")
		t.Setenv("EVIDENCE_TEST_BOOL", "true")
		t.Setenv("EVIDENCE_TEST_DURATION", "90s")

		assert.Equal(t, "json", GetEnv("EVIDENCE_TEST_STRING", "text"))
		assert.Equal(t, 42, GetEnv("EVIDENCE_TEST_INT", 0))
		assert.True(t, GetEnv("EVIDENCE_TEST_BOOL", false))
		assert.Equal(t, 90*time.Second, GetEnv("EVIDENCE_TEST_DURATION", time.Second))
	})

	t.Run("invalid value panics", func(t *testing.T) {
		t.Setenv("EVIDENCE_TEST_INT", "forty-two")
		assert.Panics(t, func() { GetEnv("EVIDENCE_TEST_INT", 0) })
	})
}

func TestGetRequiredEnv(t *testing.T) {
	t.Setenv("EVIDENCE_TEST_PORT", "8080")
	assert.Equal(t, "8080", GetRequiredEnv[string]("EVIDENCE_TEST_PORT"))
	assert.Equal(t, 8080, GetRequiredEnv[int]("EVIDENCE_TEST_PORT"))
}
