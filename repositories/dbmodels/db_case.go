package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/utils"
)

type DBCase struct {
	Id          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	OfficerId   uuid.UUID `db:"officer_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

const TABLE_CASES = "cases"

var SelectCaseColumn = utils.ColumnList[DBCase]()

func AdaptCase(db DBCase) (models.Case, error) {
	return models.Case{
		Id:          db.Id,
		Name:        db.Name,
		Description: db.Description,
		OfficerId:   db.OfficerId,
		CreatedAt:   db.CreatedAt,
		UpdatedAt:   db.UpdatedAt,
	}, nil
}
