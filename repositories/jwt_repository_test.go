package repositories

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/police-department/evidence-manager/models"
)

func TestJwtRepository(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	repo := NewJWTRepository(key)

	creds := models.Credentials{
		OfficerId: uuid.New(),
		Email:     "jane.doe@police.test",
		UserName:  "jdoe",
		Type:      models.OfficerTypePoliceOfficer,
	}

	t.Run("round trip", func(t *testing.T) {
		now := time.Now()
		token, err := repo.EncodeToken(now, now.Add(time.Hour), creds)
		require.NoError(t, err)

		got, err := repo.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, creds, got)
	})

	t.Run("expired token", func(t *testing.T) {
		now := time.Now().Add(-2 * time.Hour)
		token, err := repo.EncodeToken(now, now.Add(time.Hour), creds)
		require.NoError(t, err)

		_, err = repo.ValidateToken(token)
		assert.ErrorIs(t, err, models.UnAuthorizedError)
		assert.ErrorContains(t, err, "token is expired")
	})

	t.Run("token signed by another key", func(t *testing.T) {
		otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
		now := time.Now()
		token, err := NewJWTRepository(otherKey).EncodeToken(now, now.Add(time.Hour), creds)
		require.NoError(t, err)

		_, err = repo.ValidateToken(token)
		assert.ErrorIs(t, err, models.UnAuthorizedError)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := repo.ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, models.UnAuthorizedError)
	})
}
