package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/utils"
)

type DBEvidence struct {
	Id             uuid.UUID `db:"id"`
	CaseId         uuid.UUID `db:"case_id"`
	Name           string    `db:"name"`
	Description    string    `db:"description"`
	ImageId        uuid.UUID `db:"image_id"`
	ImageExtension string    `db:"image_extension"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

const TABLE_EVIDENCES = "evidences"

var SelectEvidenceColumn = utils.ColumnList[DBEvidence]()

func AdaptEvidence(db DBEvidence) (models.Evidence, error) {
	return models.Evidence{
		Id:             db.Id,
		Name:           db.Name,
		Description:    db.Description,
		ImageId:        db.ImageId,
		ImageExtension: db.ImageExtension,
		CaseId:         db.CaseId,
		CreatedAt:      db.CreatedAt,
		UpdatedAt:      db.UpdatedAt,
	}, nil
}
