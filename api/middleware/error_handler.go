package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/police-department/evidence-manager/dto"
	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/utils"
)

// ErrorHandler is the gin recovery function. sentrygin has already captured the panic.
func ErrorHandler(c *gin.Context, recovered any) {
	utils.LoggerFromContext(c.Request.Context()).
		ErrorContext(c.Request.Context(), fmt.Sprintf("panic while serving %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered))

	if c.Writer.Written() {
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError,
		dto.AdaptBaseResponse(models.NewFailureResponse(models.GenericError)))
}
