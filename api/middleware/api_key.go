package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/police-department/evidence-manager/dto"
	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/utils"
)

// ApiKey rejects requests whose X-API-Key header differs from expected.
// An empty expected key rejects everything.
func ApiKey(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := utils.ParseApiKeyHeader(c.Request.Header)
		if expected == "" || subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.AdaptBaseResponse(models.NewFailureResponse(models.UserIsNotAuthenticated)))
			return
		}
		c.Next()
	}
}
