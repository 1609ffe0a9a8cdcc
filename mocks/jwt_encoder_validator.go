package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/police-department/evidence-manager/models"
)

type JWTEncoderValidator struct {
	mock.Mock
}

func (m *JWTEncoderValidator) EncodeToken(issuedAt, expirationTime time.Time, creds models.Credentials) (string, error) {
	args := m.Called(issuedAt, expirationTime, creds)
	return args.String(0), args.Error(1)
}

func (m *JWTEncoderValidator) ValidateToken(accessToken string) (models.Credentials, error) {
	args := m.Called(accessToken)
	return args.Get(0).(models.Credentials), args.Error(1)
}
