package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/police-department/evidence-manager/dto"
	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/pure_utils"
	"github.com/police-department/evidence-manager/usecases"
	"github.com/police-department/evidence-manager/utils"
)

func handleListEvidencesOfCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		caseId, ok := uuidParam(c, "case_id")
		if !ok {
			presentResponse(c, readResponse, models.NewFailureResponse(models.InvalidCase))
			return
		}

		usecase := uc.NewEvidenceUseCase()
		response, err := usecase.GetEvidencesByCaseId(ctx, caseId)
		if presentError(ctx, c, err) {
			return
		}
		presentResponseWithValue(c, readResponse, response, func(evidences []models.Evidence) []dto.APIEvidence {
			return pure_utils.Map(evidences, dto.AdaptEvidenceDto)
		})
	}
}

func handlePostEvidence(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, err := utils.MustCredentialsFromCtx(ctx)
		if presentError(ctx, c, err) {
			return
		}
		caseId, ok := uuidParam(c, "case_id")
		if !ok {
			presentResponse(c, createResponse, models.NewFailureResponse(models.InvalidEvidence))
			return
		}

		var form dto.CreateEvidenceForm
		if err := c.ShouldBind(&form); err != nil {
			// the size limiter already answered with a 413
			if c.IsAborted() {
				return
			}
			_ = c.Error(err)
			presentResponse(c, createResponse, models.NewFailureResponse(models.InvalidEvidence))
			return
		}

		usecase := uc.NewEvidenceUseCase()
		response, err := usecase.CreateEvidence(ctx, dto.AdaptCreateEvidenceInput(form, caseId, creds.OfficerId))
		if presentError(ctx, c, err) {
			return
		}
		presentResponseWithValue(c, createResponse, response, dto.AdaptEvidenceDto)
	}
}

func handleGetEvidence(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		evidenceId, ok := uuidParam(c, "evidence_id")
		if !ok {
			presentResponse(c, readResponse, models.NewFailureResponse(models.InvalidEvidence))
			return
		}

		usecase := uc.NewEvidenceUseCase()
		response, err := usecase.GetEvidenceById(ctx, evidenceId)
		if presentError(ctx, c, err) {
			return
		}
		presentResponseWithValue(c, readResponse, response, dto.AdaptEvidenceDto)
	}
}

func handleGetEvidenceImage(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		evidenceId, ok := uuidParam(c, "evidence_id")
		if !ok {
			presentResponse(c, readResponse, models.NewFailureResponse(models.InvalidEvidence))
			return
		}

		usecase := uc.NewEvidenceUseCase()
		response, err := usecase.GetEvidenceImage(ctx, evidenceId)
		if presentError(ctx, c, err) {
			return
		}
		if !response.Success {
			presentResponse(c, readResponse, response.BaseResponse)
			return
		}

		image := response.Value
		defer image.Blob.ReadCloser.Close()

		c.DataFromReader(http.StatusOK, -1, image.ContentType, image.Blob.ReadCloser, map[string]string{
			"Content-Disposition": fmt.Sprintf(`inline; filename="%s%s"`, image.Evidence.ImageId, image.Evidence.ImageExtension),
		})
	}
}

func handleDeleteEvidence(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, err := utils.MustCredentialsFromCtx(ctx)
		if presentError(ctx, c, err) {
			return
		}
		evidenceId, ok := uuidParam(c, "evidence_id")
		if !ok {
			presentResponse(c, deleteResponse, models.NewFailureResponse(models.InvalidEvidence))
			return
		}

		usecase := uc.NewEvidenceUseCase()
		response, err := usecase.DeleteEvidence(ctx, creds.OfficerId, evidenceId)
		if presentError(ctx, c, err) {
			return
		}
		presentResponse(c, deleteResponse, response)
	}
}
