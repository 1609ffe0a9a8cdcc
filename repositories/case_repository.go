package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/repositories/dbmodels"
)

func (repo *DbRepository) GetCaseById(ctx context.Context, exec Executor, caseId uuid.UUID) (models.Case, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectCaseColumn...).
		From(dbmodels.TABLE_CASES).
		Where(squirrel.Eq{"id": caseId})

	return SqlToModel(ctx, exec, query, dbmodels.AdaptCase)
}

func (repo *DbRepository) ListCasesByOfficerId(ctx context.Context, exec Executor, officerId uuid.UUID) ([]models.Case, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectCaseColumn...).
		From(dbmodels.TABLE_CASES).
		Where(squirrel.Eq{"officer_id": officerId}).
		OrderBy("created_at DESC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCase)
}

func (repo *DbRepository) CreateCase(ctx context.Context, exec Executor, attributes models.CreateCaseAttributes) error {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_CASES).
		Columns("id", "name", "description", "officer_id", "created_at", "updated_at").
		Values(
			attributes.Id,
			attributes.Name,
			attributes.Description,
			attributes.OfficerId,
			attributes.CreatedAt,
			attributes.CreatedAt,
		)

	return ExecBuilder(ctx, exec, query)
}

// UpdateCase never touches id, officer_id or created_at.
func (repo *DbRepository) UpdateCase(ctx context.Context, exec Executor, attributes models.UpdateCaseAttributes) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_CASES).
		Set("updated_at", attributes.UpdatedAt).
		Where(squirrel.Eq{"id": attributes.Id})

	if attributes.Name != nil {
		query = query.Set("name", *attributes.Name)
	}
	if attributes.Description != nil {
		query = query.Set("description", *attributes.Description)
	}

	return ExecBuilder(ctx, exec, query)
}

func (repo *DbRepository) DeleteCase(ctx context.Context, exec Executor, caseId uuid.UUID) error {
	query := NewQueryBuilder().
		Delete(dbmodels.TABLE_CASES).
		Where(squirrel.Eq{"id": caseId})

	return ExecBuilder(ctx, exec, query)
}
