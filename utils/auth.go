package utils

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/police-department/evidence-manager/models"
)

func ParseApiKeyHeader(header http.Header) string {
	return strings.TrimSpace(header.Get("X-API-Key"))
}

func ParseAuthorizationBearerHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if authorization == "" {
		return "", nil
	}

	authHeader := strings.Split(authorization, "Bearer ")
	if len(authHeader) != 2 || authHeader[1] == "" {
		return "", errors.Wrap(models.UnAuthorizedError, "malformed token")
	}
	return authHeader[1], nil
}

type validator interface {
	Validate(ctx context.Context, accessToken string) (models.Credentials, error)
}

type Authentication struct {
	Validator validator
}

func NewAuthentication(validator validator) Authentication {
	return Authentication{
		Validator: validator,
	}
}

// Middleware stores the credentials of a valid bearer token in the request context.
// Requests without a token go through untouched: the route policy guard decides what to do with them.
func (a *Authentication) Middleware(c *gin.Context) {
	ctx := c.Request.Context()
	token, err := ParseAuthorizationBearerHeader(c.Request.Header)
	if err != nil {
		_ = c.Error(errors.Wrap(err, "could not parse authorization header"))
		c.Next()
		return
	}
	if token == "" {
		c.Next()
		return
	}

	credentials, err := a.Validator.Validate(ctx, token)
	if err != nil {
		if !errors.Is(err, models.UnAuthorizedError) && !errors.Is(err, models.NotFoundError) {
			LogAndReportSentryError(ctx, err)
		}
		_ = c.Error(errors.Wrap(err, "validator.Validate error"))
		c.Next()
		return
	}

	newContext := StoreCredentialsInContext(ctx, credentials)
	logger := LoggerFromContext(newContext).With(
		slog.String("Email", credentials.Email),
		slog.String("OfficerType", credentials.Type.String()),
	)
	c.Request = c.Request.WithContext(StoreLoggerInContext(newContext, logger))
	c.Next()
}
