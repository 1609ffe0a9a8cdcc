package usecases

import (
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/repositories"
	"github.com/police-department/evidence-manager/repositories/clock"
	"github.com/police-department/evidence-manager/usecases/executor_factory"
	"github.com/police-department/evidence-manager/usecases/security"
	"github.com/police-department/evidence-manager/utils"
)

const defaultImageContentType = "application/octet-stream"

type EvidenceUseCaseRepository interface {
	CreateEvidence(ctx context.Context, exec repositories.Executor, attributes models.CreateEvidenceAttributes) error
	GetEvidenceById(ctx context.Context, exec repositories.Executor, evidenceId uuid.UUID) (models.Evidence, error)
	ListEvidencesByCaseId(ctx context.Context, exec repositories.Executor, caseId uuid.UUID) ([]models.Evidence, error)
	DeleteEvidence(ctx context.Context, exec repositories.Executor, evidenceId uuid.UUID) error
}

type evidenceCaseReader interface {
	GetCaseById(ctx context.Context, exec repositories.Executor, caseId uuid.UUID) (models.Case, error)
}

type EvidenceUseCase struct {
	executorFactory   executor_factory.ExecutorFactory
	enforceSecurity   security.EnforceSecurityCase
	repository        EvidenceUseCaseRepository
	caseReader        evidenceCaseReader
	blobRepository    repositories.BlobRepository
	evidenceBucketUrl string
	clock             clock.Clock
}

func (usecase *EvidenceUseCase) CreateEvidence(
	ctx context.Context,
	input models.CreateEvidenceInput,
) (models.ResponseWithValue[models.Evidence], error) {
	fieldErrors, err := validateInput(input)
	if err != nil {
		return models.ResponseWithValue[models.Evidence]{}, err
	}
	if fieldErrors != nil {
		return models.NewValidationFailureResponseWithValue[models.Evidence](models.InvalidEvidence, fieldErrors), nil
	}

	extension := strings.ToLower(filepath.Ext(input.Image.Filename))
	if !models.IsEvidenceImageExtension(extension) {
		return models.NewValidationFailureResponseWithValue[models.Evidence](models.InvalidEvidence,
			models.FieldValidationError{
				"image": fmt.Sprintf("field `image` must have one of the extensions %s",
					strings.Join(models.EvidenceImageExtensions, ", ")),
			}), nil
	}

	exec := usecase.executorFactory.NewExecutor()
	_, err = usecase.caseReader.GetCaseById(ctx, exec, input.CaseId)
	if errors.Is(err, models.NotFoundError) {
		return models.NewFailureResponseWithValue[models.Evidence](models.InvalidEvidence), nil
	} else if err != nil {
		return models.ResponseWithValue[models.Evidence]{}, err
	}

	imageId := uuid.New()
	imageKey := models.EvidenceImageKey(imageId, extension)

	if err := usecase.writeImage(ctx, imageKey, input.Image); err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return models.NewFailureResponseWithValue[models.Evidence](models.GenericError), nil
	}

	now := usecase.clock.Now()
	attributes := models.CreateEvidenceAttributes{
		Id:             uuid.New(),
		Name:           input.Name,
		Description:    input.Description,
		ImageId:        imageId,
		ImageExtension: extension,
		CaseId:         input.CaseId,
		CreatedAt:      now,
	}
	if err := usecase.repository.CreateEvidence(ctx, exec, attributes); err != nil {
		if deleteErr := usecase.blobRepository.DeleteFile(ctx, usecase.evidenceBucketUrl, imageKey); deleteErr != nil {
			utils.LogAndReportSentryError(ctx, errors.Wrapf(deleteErr, "error deleting orphaned image %s", imageKey))
		}
		return models.ResponseWithValue[models.Evidence]{}, err
	}
	utils.MetricEvidencesUploaded.Inc()

	return models.NewSuccessResponseWithValue(models.Evidence{
		Id:             attributes.Id,
		Name:           attributes.Name,
		Description:    attributes.Description,
		ImageId:        imageId,
		ImageExtension: extension,
		CaseId:         attributes.CaseId,
		CreatedAt:      now,
		UpdatedAt:      now,
	}), nil
}

func (usecase *EvidenceUseCase) writeImage(ctx context.Context, imageKey string, image *multipart.FileHeader) error {
	file, err := image.Open()
	if err != nil {
		return errors.Wrap(err, "error opening uploaded image")
	}
	defer file.Close()

	// cancelling the context before Close discards a partial write
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	writer, err := usecase.blobRepository.OpenStream(writeCtx, usecase.evidenceBucketUrl, imageKey)
	if err != nil {
		return err
	}
	if _, err := io.Copy(writer, file); err != nil {
		cancel()
		_ = writer.Close()
		return errors.Wrapf(err, "error writing image %s", imageKey)
	}
	return errors.Wrapf(writer.Close(), "error closing image %s", imageKey)
}

func (usecase *EvidenceUseCase) GetEvidencesByCaseId(
	ctx context.Context,
	caseId uuid.UUID,
) (models.ResponseWithValue[[]models.Evidence], error) {
	exec := usecase.executorFactory.NewExecutor()
	_, err := usecase.caseReader.GetCaseById(ctx, exec, caseId)
	if errors.Is(err, models.NotFoundError) {
		return models.NewFailureResponseWithValue[[]models.Evidence](models.CaseDontExists), nil
	} else if err != nil {
		return models.ResponseWithValue[[]models.Evidence]{}, err
	}

	evidences, err := usecase.repository.ListEvidencesByCaseId(ctx, exec, caseId)
	if err != nil {
		return models.ResponseWithValue[[]models.Evidence]{}, err
	}
	return models.NewSuccessResponseWithValue(evidences), nil
}

func (usecase *EvidenceUseCase) GetEvidenceById(
	ctx context.Context,
	evidenceId uuid.UUID,
) (models.ResponseWithValue[models.Evidence], error) {
	evidence, err := usecase.repository.GetEvidenceById(ctx, usecase.executorFactory.NewExecutor(), evidenceId)
	if errors.Is(err, models.NotFoundError) {
		return models.NewFailureResponseWithValue[models.Evidence](models.EvidenceDontExists), nil
	} else if err != nil {
		return models.ResponseWithValue[models.Evidence]{}, err
	}
	return models.NewSuccessResponseWithValue(evidence), nil
}

// GetEvidenceImage opens the stored image. The caller must close the returned blob.
func (usecase *EvidenceUseCase) GetEvidenceImage(
	ctx context.Context,
	evidenceId uuid.UUID,
) (models.ResponseWithValue[models.EvidenceImage], error) {
	evidence, err := usecase.repository.GetEvidenceById(ctx, usecase.executorFactory.NewExecutor(), evidenceId)
	if errors.Is(err, models.NotFoundError) {
		return models.NewFailureResponseWithValue[models.EvidenceImage](models.EvidenceDontExists), nil
	} else if err != nil {
		return models.ResponseWithValue[models.EvidenceImage]{}, err
	}

	blob, err := usecase.blobRepository.GetBlob(ctx, usecase.evidenceBucketUrl, evidence.ImageKey())
	if errors.Is(err, models.NotFoundError) {
		return models.NewFailureResponseWithValue[models.EvidenceImage](models.EvidenceDontExists), nil
	} else if err != nil {
		return models.ResponseWithValue[models.EvidenceImage]{}, err
	}

	contentType := mime.TypeByExtension(evidence.ImageExtension)
	if contentType == "" {
		contentType = defaultImageContentType
	}
	return models.NewSuccessResponseWithValue(models.EvidenceImage{
		Evidence:    evidence,
		ContentType: contentType,
		Blob:        blob,
	}), nil
}

func (usecase *EvidenceUseCase) DeleteEvidence(
	ctx context.Context,
	officerId uuid.UUID,
	evidenceId uuid.UUID,
) (models.BaseResponse, error) {
	exec := usecase.executorFactory.NewExecutor()
	evidence, err := usecase.repository.GetEvidenceById(ctx, exec, evidenceId)
	if errors.Is(err, models.NotFoundError) {
		return models.NewFailureResponse(models.EvidenceDontExists), nil
	} else if err != nil {
		return models.BaseResponse{}, err
	}

	c, err := usecase.caseReader.GetCaseById(ctx, exec, evidence.CaseId)
	if err != nil {
		return models.BaseResponse{}, err
	}
	if err := usecase.enforceSecurity.DeleteEvidence(officerId, c); err != nil {
		if errors.Is(err, models.ForbiddenError) {
			return models.NewFailureResponse(models.Forbidden), nil
		}
		return models.BaseResponse{}, err
	}

	if err := usecase.repository.DeleteEvidence(ctx, exec, evidence.Id); err != nil {
		return models.BaseResponse{}, err
	}
	if err := usecase.blobRepository.DeleteFile(ctx, usecase.evidenceBucketUrl, evidence.ImageKey()); err != nil {
		utils.LogAndReportSentryError(ctx, err)
	}
	return models.NewSuccessResponse(), nil
}
