package api

import (
	"github.com/gin-gonic/gin"

	"github.com/police-department/evidence-manager/dto"
	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/usecases"
)

func handlePostOfficer(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateOfficerBody
		if err := c.ShouldBindJSON(&body); err != nil {
			_ = c.Error(err)
			presentResponse(c, createResponse, models.NewFailureResponse(models.GenericError))
			return
		}

		usecase := uc.NewOfficerUseCase()
		response, err := usecase.CreateOfficer(ctx, dto.AdaptCreateOfficerInput(body))
		if presentError(ctx, c, err) {
			return
		}
		presentResponseWithValue(c, createResponse, response, dto.AdaptOfficerDto)
	}
}
