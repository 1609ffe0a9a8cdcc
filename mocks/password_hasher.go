package mocks

import (
	"github.com/stretchr/testify/mock"
)

type PasswordHasher struct {
	mock.Mock
}

func (h *PasswordHasher) HashPassword(password string) (string, error) {
	args := h.Called(password)
	return args.String(0), args.Error(1)
}

func (h *PasswordHasher) ComparePassword(hash, password string) error {
	args := h.Called(hash, password)
	return args.Error(0)
}
