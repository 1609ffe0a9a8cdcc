package dto

import (
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"github.com/police-department/evidence-manager/models"
)

type APIEvidence struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageId     string    `json:"image_id"`
	CaseId      string    `json:"case_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func AdaptEvidenceDto(e models.Evidence) APIEvidence {
	return APIEvidence{
		Id:          e.Id.String(),
		Name:        e.Name,
		Description: e.Description,
		ImageId:     e.ImageId.String(),
		CaseId:      e.CaseId.String(),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

type CreateEvidenceForm struct {
	Name        string                `form:"name"`
	Description string                `form:"description"`
	Image       *multipart.FileHeader `form:"image"`
}

func AdaptCreateEvidenceInput(form CreateEvidenceForm, caseId, officerId uuid.UUID) models.CreateEvidenceInput {
	return models.CreateEvidenceInput{
		Name:        form.Name,
		Description: form.Description,
		Image:       form.Image,
		CaseId:      caseId,
		OfficerId:   officerId,
	}
}
