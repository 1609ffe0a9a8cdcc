package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/repositories/dbmodels"
)

func (repo *DbRepository) CreateOfficer(ctx context.Context, exec Executor, attributes models.CreateOfficerAttributes) error {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_OFFICERS).
		Columns("id", "user_name", "email", "password_hash", "type", "created_at", "updated_at").
		Values(
			attributes.Id,
			attributes.UserName,
			attributes.Email,
			attributes.PasswordHash,
			attributes.Type.String(),
			attributes.CreatedAt,
			attributes.CreatedAt,
		)

	return ExecBuilder(ctx, exec, query)
}

func (repo *DbRepository) GetOfficerById(ctx context.Context, exec Executor, officerId uuid.UUID) (models.Officer, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectOfficerColumn...).
		From(dbmodels.TABLE_OFFICERS).
		Where(squirrel.Eq{"id": officerId})

	return SqlToModel(ctx, exec, query, dbmodels.AdaptOfficer)
}

// GetOfficerByEmail expects a normalized (trimmed, lower case) email.
func (repo *DbRepository) GetOfficerByEmail(ctx context.Context, exec Executor, email string) (models.Officer, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectOfficerColumn...).
		From(dbmodels.TABLE_OFFICERS).
		Where(squirrel.Eq{"email": email})

	return SqlToModel(ctx, exec, query, dbmodels.AdaptOfficer)
}
