package security

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/police-department/evidence-manager/models"
)

type EnforceSecurityCase interface {
	UpdateCase(officerId uuid.UUID, c models.Case) error
	DeleteCase(officerId uuid.UUID, c models.Case) error
	ListCases(requesterId uuid.UUID, officerId uuid.UUID) error
	DeleteEvidence(officerId uuid.UUID, c models.Case) error
}

// EnforceSecurityCaseImpl only lets the owning officer write to a case.
type EnforceSecurityCaseImpl struct{}

func (e EnforceSecurityCaseImpl) UpdateCase(officerId uuid.UUID, c models.Case) error {
	return ownsCase(officerId, c, "update")
}

func (e EnforceSecurityCaseImpl) DeleteCase(officerId uuid.UUID, c models.Case) error {
	return ownsCase(officerId, c, "delete")
}

func (e EnforceSecurityCaseImpl) DeleteEvidence(officerId uuid.UUID, c models.Case) error {
	return ownsCase(officerId, c, "delete evidence of")
}

func (e EnforceSecurityCaseImpl) ListCases(requesterId uuid.UUID, officerId uuid.UUID) error {
	if requesterId != officerId {
		return errors.Wrapf(models.ForbiddenError, "officer %s can't list cases of officer %s",
			requesterId, officerId)
	}
	return nil
}

func ownsCase(officerId uuid.UUID, c models.Case, action string) error {
	if officerId == uuid.Nil || c.OfficerId != officerId {
		return errors.Wrapf(models.ForbiddenError, "officer %s can't %s case %s", officerId, action, c.Id)
	}
	return nil
}
