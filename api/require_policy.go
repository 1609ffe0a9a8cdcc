package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/police-department/evidence-manager/dto"
	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/usecases/security"
	"github.com/police-department/evidence-manager/utils"
)

// requirePolicy must run after the authentication middleware.
func requirePolicy(policy security.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		creds, found := utils.CredentialsFromCtx(c.Request.Context())

		switch security.Authorize(creds, found, policy) {
		case security.Allowed:
			c.Next()
		case security.Unauthenticated:
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.AdaptBaseResponse(models.NewFailureResponse(models.UserIsNotAuthenticated)))
		default:
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.AdaptBaseResponse(models.NewFailureResponse(models.Forbidden)))
		}
	}
}
