package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/repositories"
)

type CaseRepository struct {
	mock.Mock
}

func (r *CaseRepository) GetCaseById(ctx context.Context, exec repositories.Executor, caseId uuid.UUID) (models.Case, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).(models.Case), args.Error(1)
}

func (r *CaseRepository) ListCasesByOfficerId(ctx context.Context, exec repositories.Executor, officerId uuid.UUID) ([]models.Case, error) {
	args := r.Called(ctx, exec, officerId)
	return args.Get(0).([]models.Case), args.Error(1)
}

func (r *CaseRepository) CreateCase(ctx context.Context, exec repositories.Executor, attributes models.CreateCaseAttributes) error {
	args := r.Called(ctx, exec, attributes)
	return args.Error(0)
}

func (r *CaseRepository) UpdateCase(ctx context.Context, exec repositories.Executor, attributes models.UpdateCaseAttributes) error {
	args := r.Called(ctx, exec, attributes)
	return args.Error(0)
}

func (r *CaseRepository) DeleteCase(ctx context.Context, exec repositories.Executor, caseId uuid.UUID) error {
	args := r.Called(ctx, exec, caseId)
	return args.Error(0)
}
