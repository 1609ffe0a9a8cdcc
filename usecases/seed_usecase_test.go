package usecases

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/police-department/evidence-manager/mocks"
	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/repositories/clock"
)

const seedFile = `
- user_name: jdoe
  email: Jane.Doe@police.gov
  password: correct horse
  type: police_officer
- user_name: rroe
  email: richard.roe@police.gov
  password: battery staple
  type: police_officer
`

func TestSeedOfficers(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "officers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedFile), 0o600))

	tx := new(mocks.Transaction)
	executorFactory := &mocks.ExecutorFactory{TxMock: tx}
	repository := new(mocks.OfficerRepository)
	hasher := new(mocks.PasswordHasher)
	usecase := SeedUseCase{
		officerUseCase: OfficerUseCase{
			executorFactory: executorFactory,
			repository:      repository,
			passwordHasher:  hasher,
			clock:           clock.NewMock(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		},
		readFile: os.ReadFile,
	}

	executorFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	notFound := errors.Wrap(models.NotFoundError, "no officer")
	repository.On("GetOfficerByEmail", ctx, tx, "admin@police.gov").Return(models.Officer{}, notFound)
	repository.On("GetOfficerByEmail", ctx, tx, "jane.doe@police.gov").Return(models.Officer{}, notFound)
	repository.On("GetOfficerByEmail", ctx, tx, "richard.roe@police.gov").
		Return(models.Officer{Email: "richard.roe@police.gov"}, nil)
	hasher.On("HashPassword", mock.Anything).Return("$2a$hash", nil)
	repository.On("CreateOfficer", ctx, tx, mock.MatchedBy(func(a models.CreateOfficerAttributes) bool {
		return a.Email == "admin@police.gov" && a.Type == models.OfficerTypeAdministrator
	})).Return(nil).Once()
	repository.On("CreateOfficer", ctx, tx, mock.MatchedBy(func(a models.CreateOfficerAttributes) bool {
		return a.Email == "jane.doe@police.gov" && a.Type == models.OfficerTypePoliceOfficer
	})).Return(nil).Once()

	err := usecase.SeedOfficers(ctx, models.SeedConfiguration{
		CreateAdminEmail:    "admin@police.gov",
		CreateAdminPassword: "administrator",
		SeedOfficersFile:    path,
	})

	assert.NoError(t, err)
	repository.AssertExpectations(t)
	repository.AssertNumberOfCalls(t, "CreateOfficer", 2)
	hasher.AssertNumberOfCalls(t, "HashPassword", 2)
}

func TestSeedOfficers_invalid_file(t *testing.T) {
	usecase := SeedUseCase{
		readFile: func(name string) ([]byte, error) {
			return []byte("- user_name: jdoe\n  email: not-an-email\n  password: x\n  type: police_officer\n"), nil
		},
	}

	err := usecase.SeedOfficers(context.Background(), models.SeedConfiguration{SeedOfficersFile: "officers.yaml"})

	assert.ErrorIs(t, err, models.BadParameterError)
}

func TestSeedOfficers_nothing_configured(t *testing.T) {
	usecase := SeedUseCase{}

	assert.NoError(t, usecase.SeedOfficers(context.Background(), models.SeedConfiguration{}))
}
