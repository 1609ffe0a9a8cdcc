package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/utils"
)

type DBOfficer struct {
	Id           uuid.UUID `db:"id"`
	UserName     string    `db:"user_name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Type         string    `db:"type"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

const TABLE_OFFICERS = "officers"

var SelectOfficerColumn = utils.ColumnList[DBOfficer]()

func AdaptOfficer(db DBOfficer) (models.Officer, error) {
	return models.Officer{
		Id:           db.Id,
		UserName:     db.UserName,
		Email:        db.Email,
		PasswordHash: db.PasswordHash,
		Type:         models.OfficerTypeFrom(db.Type),
		CreatedAt:    db.CreatedAt,
		UpdatedAt:    db.UpdatedAt,
	}, nil
}
