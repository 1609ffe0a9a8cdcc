package mocks

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/police-department/evidence-manager/models"
)

type EnforceSecurityCase struct {
	mock.Mock
}

func (e *EnforceSecurityCase) UpdateCase(officerId uuid.UUID, c models.Case) error {
	args := e.Called(officerId, c)
	return args.Error(0)
}

func (e *EnforceSecurityCase) DeleteCase(officerId uuid.UUID, c models.Case) error {
	args := e.Called(officerId, c)
	return args.Error(0)
}

func (e *EnforceSecurityCase) ListCases(requesterId uuid.UUID, officerId uuid.UUID) error {
	args := e.Called(requesterId, officerId)
	return args.Error(0)
}

func (e *EnforceSecurityCase) DeleteEvidence(officerId uuid.UUID, c models.Case) error {
	args := e.Called(officerId, c)
	return args.Error(0)
}
