package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/police-department/evidence-manager/models"
)

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.NoError(t, hasher.ComparePassword(hash, "correct horse"))
	assert.ErrorIs(t, hasher.ComparePassword(hash, "battery staple"), models.ErrInvalidPassword)
	assert.ErrorIs(t, hasher.ComparePassword(hash, "battery staple"), models.UnAuthorizedError)
}
