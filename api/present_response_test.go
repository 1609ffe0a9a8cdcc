package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/police-department/evidence-manager/models"
)

func TestResponseKind_status(t *testing.T) {
	tests := []struct {
		name     string
		kind     responseKind
		response models.BaseResponse
		want     int
	}{
		{"read success", readResponse, models.NewSuccessResponse(), http.StatusOK},
		{"create success", createResponse, models.NewSuccessResponse(), http.StatusCreated},
		{"update success", updateResponse, models.NewSuccessResponse(), http.StatusNoContent},
		{"delete success", deleteResponse, models.NewSuccessResponse(), http.StatusNoContent},
		{"login success", loginResponse, models.NewSuccessResponse(), http.StatusOK},
		{"missing case", readResponse, models.NewFailureResponse(models.CaseDontExists), http.StatusNotFound},
		{"missing evidence on delete", deleteResponse, models.NewFailureResponse(models.EvidenceDontExists), http.StatusNotFound},
		{"forbidden update", updateResponse, models.NewFailureResponse(models.Forbidden), http.StatusForbidden},
		{"invalid credentials", loginResponse, models.NewFailureResponse(models.InvalidCredentials), http.StatusUnauthorized},
		{"unauthenticated", readResponse, models.NewFailureResponse(models.UserIsNotAuthenticated), http.StatusUnauthorized},
		{"too many requests", loginResponse, models.NewFailureResponse(models.TooManyRequests), http.StatusTooManyRequests},
		{"invalid case", createResponse, models.NewFailureResponse(models.InvalidCase), http.StatusBadRequest},
		{"generic error", createResponse, models.NewFailureResponse(models.GenericError), http.StatusBadRequest},
		{"generic error on delete", deleteResponse, models.NewFailureResponse(models.GenericError), http.StatusForbidden},
		{"invalid evidence on delete", deleteResponse, models.NewFailureResponse(models.InvalidEvidence), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.status(tt.response))
		})
	}
}
