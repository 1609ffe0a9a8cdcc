package utils

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/police-department/evidence-manager/models"
)

func CredentialsFromCtx(ctx context.Context) (models.Credentials, bool) {
	creds, ok := ctx.Value(ContextKeyCredentials).(models.Credentials)
	return creds, ok
}

func StoreCredentialsInContext(ctx context.Context, creds models.Credentials) context.Context {
	return context.WithValue(ctx, ContextKeyCredentials, creds)
}

// MustCredentialsFromCtx is meant for handlers mounted behind the authentication middleware.
func MustCredentialsFromCtx(ctx context.Context) (models.Credentials, error) {
	creds, ok := CredentialsFromCtx(ctx)
	if !ok {
		return models.Credentials{}, errors.Wrap(models.UnAuthorizedError, "no credentials in context")
	}
	return creds, nil
}
