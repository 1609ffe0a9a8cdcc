package dto

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/police-department/evidence-manager/models"
)

type Credentials struct {
	OfficerId string `json:"officer_id"`
	Email     string `json:"email"`
	UserName  string `json:"user_name"`
	Type      string `json:"type"`
}

func AdaptCredentialDto(creds models.Credentials) Credentials {
	return Credentials{
		OfficerId: creds.OfficerId.String(),
		Email:     creds.Email,
		UserName:  creds.UserName,
		Type:      creds.Type.String(),
	}
}

func AdaptCredential(dto Credentials) (models.Credentials, error) {
	officerId, err := uuid.Parse(dto.OfficerId)
	if err != nil {
		return models.Credentials{}, errors.Wrap(models.UnAuthorizedError, "invalid officer id in credentials")
	}
	officerType := models.OfficerTypeFrom(dto.Type)
	if officerType == "" {
		return models.Credentials{}, errors.Wrapf(models.UnAuthorizedError, "invalid officer type %q in credentials", dto.Type)
	}

	return models.Credentials{
		OfficerId: officerId,
		Email:     dto.Email,
		UserName:  dto.UserName,
		Type:      officerType,
	}, nil
}
