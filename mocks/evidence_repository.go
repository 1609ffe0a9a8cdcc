package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/repositories"
)

type EvidenceRepository struct {
	mock.Mock
}

func (r *EvidenceRepository) CreateEvidence(ctx context.Context, exec repositories.Executor, attributes models.CreateEvidenceAttributes) error {
	args := r.Called(ctx, exec, attributes)
	return args.Error(0)
}

func (r *EvidenceRepository) GetEvidenceById(ctx context.Context, exec repositories.Executor, evidenceId uuid.UUID) (models.Evidence, error) {
	args := r.Called(ctx, exec, evidenceId)
	return args.Get(0).(models.Evidence), args.Error(1)
}

func (r *EvidenceRepository) ListEvidencesByCaseId(ctx context.Context, exec repositories.Executor, caseId uuid.UUID) ([]models.Evidence, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).([]models.Evidence), args.Error(1)
}

func (r *EvidenceRepository) DeleteEvidencesByCaseId(ctx context.Context, exec repositories.Executor, caseId uuid.UUID) error {
	args := r.Called(ctx, exec, caseId)
	return args.Error(0)
}

func (r *EvidenceRepository) DeleteEvidence(ctx context.Context, exec repositories.Executor, evidenceId uuid.UUID) error {
	args := r.Called(ctx, exec, evidenceId)
	return args.Error(0)
}
