package models

import (
	"time"

	"github.com/google/uuid"
)

type Case struct {
	Id          uuid.UUID
	Name        string
	Description string
	OfficerId   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateCaseInput struct {
	Name        string `json:"name" validate:"required,notblank,max=256"`
	Description string `json:"description" validate:"required,notblank"`
	OfficerId   uuid.UUID
}

// UpdateCaseInput holds the patched fields, nil meaning unchanged.
type UpdateCaseInput struct {
	Name        *string `json:"name" validate:"omitnil,notblank,max=256"`
	Description *string `json:"description" validate:"omitnil,notblank"`
}

type CreateCaseAttributes struct {
	Id          uuid.UUID
	Name        string
	Description string
	OfficerId   uuid.UUID
	CreatedAt   time.Time
}

type UpdateCaseAttributes struct {
	Id          uuid.UUID
	Name        *string
	Description *string
	UpdatedAt   time.Time
}
