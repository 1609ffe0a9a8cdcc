package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/repositories"
)

type OfficerRepository struct {
	mock.Mock
}

func (r *OfficerRepository) CreateOfficer(ctx context.Context, exec repositories.Executor, attributes models.CreateOfficerAttributes) error {
	args := r.Called(ctx, exec, attributes)
	return args.Error(0)
}

func (r *OfficerRepository) GetOfficerById(ctx context.Context, exec repositories.Executor, officerId uuid.UUID) (models.Officer, error) {
	args := r.Called(ctx, exec, officerId)
	return args.Get(0).(models.Officer), args.Error(1)
}

func (r *OfficerRepository) GetOfficerByEmail(ctx context.Context, exec repositories.Executor, email string) (models.Officer, error) {
	args := r.Called(ctx, exec, email)
	return args.Get(0).(models.Officer), args.Error(1)
}
