package api

import (
	"github.com/gin-gonic/gin"

	"github.com/police-department/evidence-manager/dto"
	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/usecases"
)

func handleLogin(uc usecases.Usecases) func(c *gin.Context) {
	generator := uc.NewTokenGenerator()

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.LoginBody
		if err := c.ShouldBindJSON(&body); err != nil {
			_ = c.Error(err)
			presentResponse(c, loginResponse, models.NewFailureResponse(models.GenericError))
			return
		}

		response, err := generator.Login(ctx, dto.AdaptLoginInput(body))
		if presentError(ctx, c, err) {
			return
		}
		presentResponseWithValue(c, loginResponse, response, dto.AdaptAccessTokenDto)
	}
}
