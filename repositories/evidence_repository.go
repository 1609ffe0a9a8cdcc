package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/repositories/dbmodels"
)

func (repo *DbRepository) CreateEvidence(ctx context.Context, exec Executor, attributes models.CreateEvidenceAttributes) error {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_EVIDENCES).
		Columns("id", "case_id", "name", "description", "image_id", "image_extension", "created_at", "updated_at").
		Values(
			attributes.Id,
			attributes.CaseId,
			attributes.Name,
			attributes.Description,
			attributes.ImageId,
			attributes.ImageExtension,
			attributes.CreatedAt,
			attributes.CreatedAt,
		)

	return ExecBuilder(ctx, exec, query)
}

func (repo *DbRepository) GetEvidenceById(ctx context.Context, exec Executor, evidenceId uuid.UUID) (models.Evidence, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectEvidenceColumn...).
		From(dbmodels.TABLE_EVIDENCES).
		Where(squirrel.Eq{"id": evidenceId})

	return SqlToModel(ctx, exec, query, dbmodels.AdaptEvidence)
}

func (repo *DbRepository) ListEvidencesByCaseId(ctx context.Context, exec Executor, caseId uuid.UUID) ([]models.Evidence, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectEvidenceColumn...).
		From(dbmodels.TABLE_EVIDENCES).
		Where(squirrel.Eq{"case_id": caseId}).
		OrderBy("created_at")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptEvidence)
}

func (repo *DbRepository) DeleteEvidencesByCaseId(ctx context.Context, exec Executor, caseId uuid.UUID) error {
	query := NewQueryBuilder().
		Delete(dbmodels.TABLE_EVIDENCES).
		Where(squirrel.Eq{"case_id": caseId})

	return ExecBuilder(ctx, exec, query)
}

func (repo *DbRepository) DeleteEvidence(ctx context.Context, exec Executor, evidenceId uuid.UUID) error {
	query := NewQueryBuilder().
		Delete(dbmodels.TABLE_EVIDENCES).
		Where(squirrel.Eq{"id": evidenceId})

	return ExecBuilder(ctx, exec, query)
}
