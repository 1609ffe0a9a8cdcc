package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/police-department/evidence-manager/dto"
	"github.com/police-department/evidence-manager/models"
)

// responseKind holds the statuses of a route: one for success, one for failures
// that no specific status covers.
type responseKind struct {
	successStatus  int
	fallbackStatus int
}

var (
	readResponse   = responseKind{successStatus: http.StatusOK, fallbackStatus: http.StatusBadRequest}
	createResponse = responseKind{successStatus: http.StatusCreated, fallbackStatus: http.StatusBadRequest}
	updateResponse = responseKind{successStatus: http.StatusNoContent, fallbackStatus: http.StatusBadRequest}
	loginResponse  = responseKind{successStatus: http.StatusOK, fallbackStatus: http.StatusBadRequest}
	// delete routes answer 403 to anything but a missing case or evidence
	deleteResponse = responseKind{successStatus: http.StatusNoContent, fallbackStatus: http.StatusForbidden}
)

func (kind responseKind) status(response models.BaseResponse) int {
	if response.Success {
		return kind.successStatus
	}

	switch response.Message {
	case models.CaseDontExists, models.EvidenceDontExists:
		return http.StatusNotFound
	case models.Forbidden:
		return http.StatusForbidden
	case models.InvalidCredentials, models.UserIsNotAuthenticated:
		return http.StatusUnauthorized
	case models.TooManyRequests:
		return http.StatusTooManyRequests
	default:
		return kind.fallbackStatus
	}
}

func presentResponse(c *gin.Context, kind responseKind, response models.BaseResponse) {
	status := kind.status(response)
	if status == http.StatusNoContent {
		c.Status(status)
		return
	}
	c.JSON(status, dto.AdaptBaseResponse(response))
}

func presentResponseWithValue[T, U any](
	c *gin.Context,
	kind responseKind,
	response models.ResponseWithValue[T],
	adapter func(T) U,
) {
	status := kind.status(response.BaseResponse)
	if status == http.StatusNoContent {
		c.Status(status)
		return
	}
	c.JSON(status, dto.AdaptResponseWithValue(response, adapter))
}
