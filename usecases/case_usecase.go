package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/repositories"
	"github.com/police-department/evidence-manager/repositories/clock"
	"github.com/police-department/evidence-manager/usecases/executor_factory"
	"github.com/police-department/evidence-manager/usecases/security"
	"github.com/police-department/evidence-manager/utils"
)

const maxConcurrentBlobDeletions = 5

type CaseUseCaseRepository interface {
	GetCaseById(ctx context.Context, exec repositories.Executor, caseId uuid.UUID) (models.Case, error)
	ListCasesByOfficerId(ctx context.Context, exec repositories.Executor, officerId uuid.UUID) ([]models.Case, error)
	CreateCase(ctx context.Context, exec repositories.Executor, attributes models.CreateCaseAttributes) error
	UpdateCase(ctx context.Context, exec repositories.Executor, attributes models.UpdateCaseAttributes) error
	DeleteCase(ctx context.Context, exec repositories.Executor, caseId uuid.UUID) error
}

type caseEvidenceRepository interface {
	ListEvidencesByCaseId(ctx context.Context, exec repositories.Executor, caseId uuid.UUID) ([]models.Evidence, error)
	DeleteEvidencesByCaseId(ctx context.Context, exec repositories.Executor, caseId uuid.UUID) error
}

type blobDeleter interface {
	DeleteFile(ctx context.Context, bucketUrl, fileName string) error
}

type CaseUseCase struct {
	executorFactory    executor_factory.ExecutorFactory
	enforceSecurity    security.EnforceSecurityCase
	repository         CaseUseCaseRepository
	evidenceRepository caseEvidenceRepository
	blobRepository     blobDeleter
	evidenceBucketUrl  string
	clock              clock.Clock
}

func (usecase *CaseUseCase) CreateCase(
	ctx context.Context,
	input models.CreateCaseInput,
) (models.ResponseWithValue[models.Case], error) {
	fieldErrors, err := validateInput(input)
	if err != nil {
		return models.ResponseWithValue[models.Case]{}, err
	}
	if fieldErrors != nil {
		return models.NewValidationFailureResponseWithValue[models.Case](models.InvalidCase, fieldErrors), nil
	}

	now := usecase.clock.Now()
	attributes := models.CreateCaseAttributes{
		Id:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		OfficerId:   input.OfficerId,
		CreatedAt:   now,
	}
	if err := usecase.repository.CreateCase(ctx, usecase.executorFactory.NewExecutor(), attributes); err != nil {
		return models.ResponseWithValue[models.Case]{}, err
	}
	utils.MetricCasesCreated.Inc()

	return models.NewSuccessResponseWithValue(models.Case{
		Id:          attributes.Id,
		Name:        attributes.Name,
		Description: attributes.Description,
		OfficerId:   attributes.OfficerId,
		CreatedAt:   now,
		UpdatedAt:   now,
	}), nil
}

func (usecase *CaseUseCase) UpdateCase(
	ctx context.Context,
	officerId uuid.UUID,
	caseId uuid.UUID,
	input models.UpdateCaseInput,
) (models.BaseResponse, error) {
	exec := usecase.executorFactory.NewExecutor()
	c, err := usecase.repository.GetCaseById(ctx, exec, caseId)
	if errors.Is(err, models.NotFoundError) {
		return models.NewFailureResponse(models.CaseDontExists), nil
	} else if err != nil {
		return models.BaseResponse{}, err
	}

	if err := usecase.enforceSecurity.UpdateCase(officerId, c); err != nil {
		if errors.Is(err, models.ForbiddenError) {
			return models.NewFailureResponse(models.Forbidden), nil
		}
		return models.BaseResponse{}, err
	}

	fieldErrors, err := validateInput(input)
	if err != nil {
		return models.BaseResponse{}, err
	}
	if fieldErrors != nil {
		return models.NewValidationFailureResponse(models.InvalidCase, fieldErrors), nil
	}

	err = usecase.repository.UpdateCase(ctx, exec, models.UpdateCaseAttributes{
		Id:          c.Id,
		Name:        input.Name,
		Description: input.Description,
		UpdatedAt:   usecase.clock.Now(),
	})
	if err != nil {
		return models.BaseResponse{}, err
	}
	return models.NewSuccessResponse(), nil
}

// DeleteCase never returns an error: unexpected failures are reported and folded into GenericError.
func (usecase *CaseUseCase) DeleteCase(ctx context.Context, officerId uuid.UUID, caseId uuid.UUID) models.BaseResponse {
	c, err := usecase.repository.GetCaseById(ctx, usecase.executorFactory.NewExecutor(), caseId)
	if errors.Is(err, models.NotFoundError) {
		return models.NewFailureResponse(models.CaseDontExists)
	} else if err != nil {
		utils.LogAndReportSentryError(ctx, errors.Wrap(err, "error fetching case to delete"))
		return models.NewFailureResponse(models.GenericError)
	}

	if err := usecase.enforceSecurity.DeleteCase(officerId, c); err != nil {
		return models.NewFailureResponse(models.Forbidden)
	}

	evidences, err := executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) ([]models.Evidence, error) {
			evidences, err := usecase.evidenceRepository.ListEvidencesByCaseId(ctx, tx, c.Id)
			if err != nil {
				return nil, err
			}
			if err := usecase.evidenceRepository.DeleteEvidencesByCaseId(ctx, tx, c.Id); err != nil {
				return nil, err
			}
			if err := usecase.repository.DeleteCase(ctx, tx, c.Id); err != nil {
				return nil, err
			}
			return evidences, nil
		})
	if err != nil {
		utils.LogAndReportSentryError(ctx, errors.Wrapf(err, "error deleting case %s", c.Id))
		return models.NewFailureResponse(models.GenericError)
	}

	usecase.deleteEvidenceImages(ctx, evidences)
	return models.NewSuccessResponse()
}

// deleteEvidenceImages is best effort: the rows are already gone.
func (usecase *CaseUseCase) deleteEvidenceImages(ctx context.Context, evidences []models.Evidence) {
	if len(evidences) == 0 {
		return
	}

	var group errgroup.Group
	group.SetLimit(maxConcurrentBlobDeletions)
	for _, evidence := range evidences {
		group.Go(func() error {
			err := usecase.blobRepository.DeleteFile(ctx, usecase.evidenceBucketUrl, evidence.ImageKey())
			return errors.Wrapf(err, "error deleting image of evidence %s", evidence.Id)
		})
	}
	if err := group.Wait(); err != nil {
		utils.LogAndReportSentryError(ctx, err)
	}
}

func (usecase *CaseUseCase) GetCaseById(ctx context.Context, caseId uuid.UUID) (models.ResponseWithValue[models.Case], error) {
	c, err := usecase.repository.GetCaseById(ctx, usecase.executorFactory.NewExecutor(), caseId)
	if errors.Is(err, models.NotFoundError) {
		return models.NewFailureResponseWithValue[models.Case](models.CaseDontExists), nil
	} else if err != nil {
		return models.ResponseWithValue[models.Case]{}, err
	}
	return models.NewSuccessResponseWithValue(c), nil
}

func (usecase *CaseUseCase) GetCasesByOfficerId(
	ctx context.Context,
	requesterId uuid.UUID,
	officerId uuid.UUID,
) (models.ResponseWithValue[[]models.Case], error) {
	if err := usecase.enforceSecurity.ListCases(requesterId, officerId); err != nil {
		if errors.Is(err, models.ForbiddenError) {
			return models.NewFailureResponseWithValue[[]models.Case](models.Forbidden), nil
		}
		return models.ResponseWithValue[[]models.Case]{}, err
	}

	cases, err := usecase.repository.ListCasesByOfficerId(ctx, usecase.executorFactory.NewExecutor(), officerId)
	if err != nil {
		return models.ResponseWithValue[[]models.Case]{}, err
	}
	return models.NewSuccessResponseWithValue(cases), nil
}
