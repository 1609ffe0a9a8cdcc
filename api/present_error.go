package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/police-department/evidence-manager/dto"
	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/utils"
)

// presentError renders unexpected errors as a 500 without leaking their detail.
func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	_ = c.Error(err)
	utils.LogAndReportSentryError(ctx, err)
	c.JSON(http.StatusInternalServerError, dto.AdaptBaseResponse(models.NewFailureResponse(models.GenericError)))
	return true
}
