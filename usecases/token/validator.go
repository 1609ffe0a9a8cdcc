package token

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/repositories"
	"github.com/police-department/evidence-manager/usecases/executor_factory"
)

const (
	officerCacheSize = 1000
	officerCacheTTL  = time.Minute
)

type officerByIdReader interface {
	GetOfficerById(ctx context.Context, exec repositories.Executor, officerId uuid.UUID) (models.Officer, error)
}

type tokenValidator interface {
	ValidateToken(accessToken string) (models.Credentials, error)
}

type Validator struct {
	executorFactory executor_factory.ExecutorFactory
	repository      officerByIdReader
	validator       tokenValidator
	officers        *expirable.LRU[uuid.UUID, models.Officer]
}

// Validate checks the token signature, then that its officer still exists.
// The returned credentials reflect the stored officer, not the token claims.
func (v *Validator) Validate(ctx context.Context, accessToken string) (models.Credentials, error) {
	credentials, err := v.validator.ValidateToken(accessToken)
	if err != nil {
		return models.Credentials{}, err
	}

	officer, err := v.officer(ctx, credentials.OfficerId)
	if err != nil {
		return models.Credentials{}, err
	}
	return officer.IntoCredentials(), nil
}

func (v *Validator) officer(ctx context.Context, officerId uuid.UUID) (models.Officer, error) {
	if officer, ok := v.officers.Get(officerId); ok {
		return officer, nil
	}

	officer, err := v.repository.GetOfficerById(ctx, v.executorFactory.NewExecutor(), officerId)
	if errors.Is(err, models.NotFoundError) {
		return models.Officer{}, errors.Wrapf(models.ErrUnknownOfficer, "officer %s", officerId)
	} else if err != nil {
		return models.Officer{}, errors.Wrap(err, "repository.GetOfficerById error")
	}
	v.officers.Add(officerId, officer)
	return officer, nil
}

func NewValidator(
	executorFactory executor_factory.ExecutorFactory,
	repository officerByIdReader,
	validator tokenValidator,
) *Validator {
	return &Validator{
		executorFactory: executorFactory,
		repository:      repository,
		validator:       validator,
		officers:        expirable.NewLRU[uuid.UUID, models.Officer](officerCacheSize, nil, officerCacheTTL),
	}
}
