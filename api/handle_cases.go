package api

import (
	"github.com/gin-gonic/gin"

	"github.com/police-department/evidence-manager/dto"
	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/pure_utils"
	"github.com/police-department/evidence-manager/usecases"
	"github.com/police-department/evidence-manager/utils"
)

func handleListCasesOfOfficer(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, err := utils.MustCredentialsFromCtx(ctx)
		if presentError(ctx, c, err) {
			return
		}
		officerId, ok := uuidParam(c, "officer_id")
		if !ok {
			presentResponse(c, readResponse, models.NewFailureResponse(models.Forbidden))
			return
		}

		usecase := uc.NewCaseUseCase()
		response, err := usecase.GetCasesByOfficerId(ctx, creds.OfficerId, officerId)
		if presentError(ctx, c, err) {
			return
		}
		presentResponseWithValue(c, readResponse, response, func(cases []models.Case) []dto.APICase {
			return pure_utils.Map(cases, dto.AdaptCaseDto)
		})
	}
}

func handleGetCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		caseId, ok := uuidParam(c, "case_id")
		if !ok {
			presentResponse(c, readResponse, models.NewFailureResponse(models.InvalidCase))
			return
		}

		usecase := uc.NewCaseUseCase()
		response, err := usecase.GetCaseById(ctx, caseId)
		if presentError(ctx, c, err) {
			return
		}
		presentResponseWithValue(c, readResponse, response, dto.AdaptCaseDto)
	}
}

func handlePostCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, err := utils.MustCredentialsFromCtx(ctx)
		if presentError(ctx, c, err) {
			return
		}

		var body dto.CreateCaseBody
		if err := c.ShouldBindJSON(&body); err != nil {
			_ = c.Error(err)
			presentResponse(c, createResponse, models.NewFailureResponse(models.InvalidCase))
			return
		}

		usecase := uc.NewCaseUseCase()
		response, err := usecase.CreateCase(ctx, dto.AdaptCreateCaseInput(body, creds.OfficerId))
		if presentError(ctx, c, err) {
			return
		}
		presentResponseWithValue(c, createResponse, response, dto.AdaptCaseDto)
	}
}

func handlePatchCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, err := utils.MustCredentialsFromCtx(ctx)
		if presentError(ctx, c, err) {
			return
		}
		caseId, ok := uuidParam(c, "case_id")
		if !ok {
			presentResponse(c, updateResponse, models.NewFailureResponse(models.InvalidCase))
			return
		}

		var body dto.UpdateCaseBody
		if err := c.ShouldBindJSON(&body); err != nil {
			_ = c.Error(err)
			presentResponse(c, updateResponse, models.NewFailureResponse(models.InvalidCase))
			return
		}

		usecase := uc.NewCaseUseCase()
		response, err := usecase.UpdateCase(ctx, creds.OfficerId, caseId, dto.AdaptUpdateCaseInput(body))
		if presentError(ctx, c, err) {
			return
		}
		presentResponse(c, updateResponse, response)
	}
}

func handleDeleteCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, err := utils.MustCredentialsFromCtx(ctx)
		if presentError(ctx, c, err) {
			return
		}
		caseId, ok := uuidParam(c, "case_id")
		if !ok {
			presentResponse(c, deleteResponse, models.NewFailureResponse(models.InvalidCase))
			return
		}

		usecase := uc.NewCaseUseCase()
		presentResponse(c, deleteResponse, usecase.DeleteCase(ctx, creds.OfficerId, caseId))
	}
}
