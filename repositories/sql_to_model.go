package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"

	"github.com/police-department/evidence-manager/models"
)

func NewQueryBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func ExecBuilder(ctx context.Context, exec Executor, builder squirrel.Sqlizer) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return errors.Wrap(err, "can't build sql query")
	}

	_, err = exec.Exec(ctx, query, args...)
	return errors.Wrap(err, "error executing sql query")
}

// SqlToListOfModels executes the query and adapts every returned row.
func SqlToListOfModels[DBModel, Model any](
	ctx context.Context,
	exec Executor,
	builder squirrel.Sqlizer,
	adapter func(dbModel DBModel) (Model, error),
) ([]Model, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "can't build sql query")
	}

	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "error executing sql query")
	}

	dbModels, err := pgx.CollectRows(rows, pgx.RowToStructByName[DBModel])
	if err != nil {
		var zero DBModel
		return nil, errors.Wrap(err, fmt.Sprintf("error scanning rows to struct %T", zero))
	}

	result := make([]Model, 0, len(dbModels))
	for _, dbModel := range dbModels {
		model, err := adapter(dbModel)
		if err != nil {
			return nil, err
		}
		result = append(result, model)
	}
	return result, nil
}

// SqlToOptionalModel returns nil when the query returns no row.
func SqlToOptionalModel[DBModel, Model any](
	ctx context.Context,
	exec Executor,
	builder squirrel.Sqlizer,
	adapter func(dbModel DBModel) (Model, error),
) (*Model, error) {
	results, err := SqlToListOfModels(ctx, exec, builder, adapter)
	if err != nil {
		return nil, err
	}

	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return &results[0], nil
	default:
		return nil, errors.Newf("expected at most one row, got %d", len(results))
	}
}

// SqlToModel wraps models.NotFoundError when the query returns no row.
func SqlToModel[DBModel, Model any](
	ctx context.Context,
	exec Executor,
	builder squirrel.Sqlizer,
	adapter func(dbModel DBModel) (Model, error),
) (Model, error) {
	model, err := SqlToOptionalModel(ctx, exec, builder, adapter)
	if err != nil {
		var zero Model
		return zero, err
	}
	if model == nil {
		var zero Model
		return zero, errors.Wrap(models.NotFoundError, fmt.Sprintf("found no object of type %T", zero))
	}
	return *model, nil
}
