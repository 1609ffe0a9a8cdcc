package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/repositories"
	"github.com/police-department/evidence-manager/repositories/clock"
	"github.com/police-department/evidence-manager/usecases/executor_factory"
)

type OfficerUseCaseRepository interface {
	CreateOfficer(ctx context.Context, exec repositories.Executor, attributes models.CreateOfficerAttributes) error
	GetOfficerById(ctx context.Context, exec repositories.Executor, officerId uuid.UUID) (models.Officer, error)
	GetOfficerByEmail(ctx context.Context, exec repositories.Executor, email string) (models.Officer, error)
}

type passwordHasher interface {
	HashPassword(password string) (string, error)
}

type OfficerUseCase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      OfficerUseCaseRepository
	passwordHasher  passwordHasher
	clock           clock.Clock
}

func (usecase *OfficerUseCase) CreateOfficer(
	ctx context.Context,
	input models.CreateOfficerInput,
) (models.ResponseWithValue[models.Officer], error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.UserName = strings.TrimSpace(input.UserName)

	fieldErrors, err := validateInput(input)
	if err != nil {
		return models.ResponseWithValue[models.Officer]{}, err
	}
	if fieldErrors != nil {
		return models.NewValidationFailureResponseWithValue[models.Officer](models.GenericError, fieldErrors), nil
	}

	officer, err := usecase.createOfficer(ctx, usecase.executorFactory.NewExecutor(), input)
	if repositories.IsUniqueViolationError(err) {
		return models.NewValidationFailureResponseWithValue[models.Officer](models.GenericError,
			models.FieldValidationError{"email": "field `email` is already used"}), nil
	} else if err != nil {
		return models.ResponseWithValue[models.Officer]{}, err
	}
	return models.NewSuccessResponseWithValue(officer), nil
}

func (usecase *OfficerUseCase) createOfficer(
	ctx context.Context,
	exec repositories.Executor,
	input models.CreateOfficerInput,
) (models.Officer, error) {
	hash, err := usecase.passwordHasher.HashPassword(input.Password)
	if err != nil {
		return models.Officer{}, err
	}

	now := usecase.clock.Now()
	attributes := models.CreateOfficerAttributes{
		Id:           uuid.New(),
		UserName:     input.UserName,
		Email:        input.Email,
		PasswordHash: hash,
		Type:         models.OfficerTypeFrom(input.Type),
		CreatedAt:    now,
	}
	if err := usecase.repository.CreateOfficer(ctx, exec, attributes); err != nil {
		return models.Officer{}, err
	}

	return models.Officer{
		Id:           attributes.Id,
		UserName:     attributes.UserName,
		Email:        attributes.Email,
		PasswordHash: attributes.PasswordHash,
		Type:         attributes.Type,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
