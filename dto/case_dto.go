package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/guregu/null/v5"

	"github.com/police-department/evidence-manager/models"
)

type APICase struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OfficerId   string    `json:"officer_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func AdaptCaseDto(c models.Case) APICase {
	return APICase{
		Id:          c.Id.String(),
		Name:        c.Name,
		Description: c.Description,
		OfficerId:   c.OfficerId.String(),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// CreateCaseBody has no id, officer_id or timestamps: the server sets them.
type CreateCaseBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func AdaptCreateCaseInput(body CreateCaseBody, officerId uuid.UUID) models.CreateCaseInput {
	return models.CreateCaseInput{
		Name:        body.Name,
		Description: body.Description,
		OfficerId:   officerId,
	}
}

// UpdateCaseBody only carries the patchable fields. Absent or null means unchanged.
type UpdateCaseBody struct {
	Name        null.String `json:"name"`
	Description null.String `json:"description"`
}

func AdaptUpdateCaseInput(body UpdateCaseBody) models.UpdateCaseInput {
	return models.UpdateCaseInput{
		Name:        body.Name.Ptr(),
		Description: body.Description.Ptr(),
	}
}
