package token

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/police-department/evidence-manager/mocks"
	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/repositories/clock"
)

func TestGenerator_Login(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	lifetime := 2 * time.Hour
	officer := models.Officer{
		Id:           uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		UserName:     "jdoe",
		Email:        "jane.doe@police.gov",
		PasswordHash: "$2a$hash",
		Type:         models.OfficerTypePoliceOfficer,
	}

	executor := new(mocks.Executor)
	setup := func() (*Generator, *mocks.OfficerRepository, *mocks.PasswordHasher, *mocks.JWTEncoderValidator) {
		executorFactory := new(mocks.ExecutorFactory)
		executorFactory.On("NewExecutor").Return(executor)
		repository := new(mocks.OfficerRepository)
		hasher := new(mocks.PasswordHasher)
		encoder := new(mocks.JWTEncoderValidator)
		return NewGenerator(executorFactory, repository, encoder, hasher, clock.NewMock(now), lifetime),
			repository, hasher, encoder
	}

	t.Run("valid credentials", func(t *testing.T) {
		g, repository, hasher, encoder := setup()
		repository.On("GetOfficerByEmail", ctx, executor, "jane.doe@police.gov").Return(officer, nil)
		hasher.On("ComparePassword", "$2a$hash", "correct horse").Return(nil)
		encoder.On("EncodeToken", now, now.Add(lifetime), officer.IntoCredentials()).Return("signed.jwt.token", nil)

		resp, err := g.Login(ctx, models.LoginInput{Email: " Jane.Doe@police.gov", Password: "correct horse"})

		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.True(t, resp.Value.Valid())
		assert.Equal(t, models.AccessTokenModel{
			TokenType:   "Bearer",
			AccessToken: "signed.jwt.token",
			Expires:     now.Add(lifetime),
			UserId:      officer.Id.String(),
		}, resp.Value)
	})

	t.Run("unknown email", func(t *testing.T) {
		g, repository, _, _ := setup()
		repository.On("GetOfficerByEmail", ctx, executor, "ghost@police.gov").
			Return(models.Officer{}, errors.Wrap(models.NotFoundError, "no officer"))

		resp, err := g.Login(ctx, models.LoginInput{Email: "ghost@police.gov", Password: "whatever1"})

		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, models.InvalidCredentials, resp.Message)
		assert.False(t, resp.Value.Valid())
	})

	t.Run("wrong password", func(t *testing.T) {
		g, repository, hasher, encoder := setup()
		repository.On("GetOfficerByEmail", ctx, executor, "jane.doe@police.gov").Return(officer, nil)
		hasher.On("ComparePassword", "$2a$hash", "wrong").Return(models.ErrInvalidPassword)

		resp, err := g.Login(ctx, models.LoginInput{Email: "jane.doe@police.gov", Password: "wrong"})

		require.NoError(t, err)
		assert.Equal(t, models.InvalidCredentials, resp.Message)
		encoder.AssertNotCalled(t, "EncodeToken")
	})

	t.Run("empty input", func(t *testing.T) {
		g, _, _, _ := setup()

		resp, err := g.Login(ctx, models.LoginInput{})

		require.NoError(t, err)
		assert.Equal(t, models.InvalidCredentials, resp.Message)
	})

	t.Run("database failure", func(t *testing.T) {
		g, repository, _, _ := setup()
		repository.On("GetOfficerByEmail", ctx, executor, "jane.doe@police.gov").
			Return(models.Officer{}, errors.New("db down"))

		_, err := g.Login(ctx, models.LoginInput{Email: "jane.doe@police.gov", Password: "correct horse"})

		assert.Error(t, err)
	})
}
