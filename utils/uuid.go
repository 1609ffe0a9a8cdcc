package utils

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/police-department/evidence-manager/models"
)

func ParseUuid(uuidParam string) (uuid.UUID, error) {
	id, err := uuid.Parse(uuidParam)
	if err != nil {
		return uuid.Nil, errors.Wrapf(models.BadParameterError, "'%s' is not a valid UUID", uuidParam)
	}
	return id, nil
}
