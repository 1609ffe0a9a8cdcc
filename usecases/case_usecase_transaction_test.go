package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/police-department/evidence-manager/mocks"
	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/repositories"
	"github.com/police-department/evidence-manager/repositories/clock"
	"github.com/police-department/evidence-manager/repositories/dbmodels"
	"github.com/police-department/evidence-manager/usecases/executor_factory"
	"github.com/police-department/evidence-manager/usecases/security"
)

func TestDeleteCase_is_all_or_nothing(t *testing.T) {
	ctx := context.Background()
	officerId := uuid.New()
	caseId := uuid.New()
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	stub := executor_factory.NewExecutorFactoryStub()
	blobRepository := new(mocks.BlobRepository)
	repository := &repositories.DbRepository{}
	usecase := CaseUseCase{
		executorFactory:    stub,
		enforceSecurity:    security.EnforceSecurityCaseImpl{},
		repository:         repository,
		evidenceRepository: repository,
		blobRepository:     blobRepository,
		evidenceBucketUrl:  testBucketUrl,
		clock:              clock.NewMock(createdAt),
	}

	stub.Mock.ExpectQuery("SELECT .* FROM cases WHERE id = \\$1").
		WithArgs(caseId.String()).
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectCaseColumn).
			AddRow(caseId, "Burglary", "Main St", officerId, createdAt, createdAt))
	stub.Mock.ExpectBegin()
	stub.Mock.ExpectQuery("SELECT .* FROM evidences WHERE case_id = \\$1").
		WithArgs(caseId.String()).
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectEvidenceColumn).
			AddRow(uuid.New(), caseId, "Crowbar", "Found at the door", uuid.New(), ".jpg", createdAt, createdAt))
	stub.Mock.ExpectExec("DELETE FROM evidences WHERE case_id = \\$1").
		WithArgs(caseId.String()).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	stub.Mock.ExpectExec("DELETE FROM cases WHERE id = \\$1").
		WithArgs(caseId.String()).
		WillReturnError(errors.New("connection reset by peer"))
	stub.Mock.ExpectRollback()
	stub.Mock.ExpectRollback()

	resp := usecase.DeleteCase(ctx, officerId, caseId)

	assert.False(t, resp.Success)
	assert.Equal(t, models.GenericError, resp.Message)
	assert.NoError(t, stub.Mock.ExpectationsWereMet(), "the transaction must roll back without commit")
	blobRepository.AssertNotCalled(t, "DeleteFile", mock.Anything, mock.Anything, mock.Anything)
}
