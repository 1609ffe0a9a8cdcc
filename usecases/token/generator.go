package token

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/repositories"
	"github.com/police-department/evidence-manager/repositories/clock"
	"github.com/police-department/evidence-manager/usecases/executor_factory"
	"github.com/police-department/evidence-manager/utils"
)

type officerByEmailReader interface {
	GetOfficerByEmail(ctx context.Context, exec repositories.Executor, email string) (models.Officer, error)
}

type encoder interface {
	EncodeToken(issuedAt, expirationTime time.Time, creds models.Credentials) (string, error)
}

type passwordComparer interface {
	ComparePassword(hash, password string) error
}

type Generator struct {
	executorFactory  executor_factory.ExecutorFactory
	repository       officerByEmailReader
	encoder          encoder
	passwordComparer passwordComparer
	clock            clock.Clock
	tokenLifetime    time.Duration
}

// Login exchanges an officer email and password for a bearer token.
// A wrong email and a wrong password are reported the same way.
func (g *Generator) Login(ctx context.Context, input models.LoginInput) (models.ResponseWithValue[models.AccessTokenModel], error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		utils.MetricLoginAttempts.WithLabelValues("invalid_credentials").Inc()
		return models.NewFailureResponseWithValue[models.AccessTokenModel](models.InvalidCredentials), nil
	}

	officer, err := g.repository.GetOfficerByEmail(ctx, g.executorFactory.NewExecutor(), email)
	if errors.Is(err, models.NotFoundError) {
		utils.MetricLoginAttempts.WithLabelValues("invalid_credentials").Inc()
		return models.NewFailureResponseWithValue[models.AccessTokenModel](models.InvalidCredentials), nil
	} else if err != nil {
		return models.ResponseWithValue[models.AccessTokenModel]{}, errors.Wrap(err, "repository.GetOfficerByEmail error")
	}

	err = g.passwordComparer.ComparePassword(officer.PasswordHash, input.Password)
	if errors.Is(err, models.ErrInvalidPassword) {
		utils.MetricLoginAttempts.WithLabelValues("invalid_credentials").Inc()
		return models.NewFailureResponseWithValue[models.AccessTokenModel](models.InvalidCredentials), nil
	} else if err != nil {
		return models.ResponseWithValue[models.AccessTokenModel]{}, err
	}

	issuedAt := g.clock.Now()
	expirationTime := issuedAt.Add(g.tokenLifetime)
	token, err := g.encoder.EncodeToken(issuedAt, expirationTime, officer.IntoCredentials())
	if err != nil {
		return models.ResponseWithValue[models.AccessTokenModel]{}, errors.Wrap(err, "encoder.EncodeToken error")
	}
	utils.MetricLoginAttempts.WithLabelValues("success").Inc()

	return models.NewSuccessResponseWithValue(models.AccessTokenModel{
		TokenType:   models.TokenTypeBearer,
		AccessToken: token,
		Expires:     expirationTime,
		UserId:      officer.Id.String(),
	}), nil
}

func NewGenerator(
	executorFactory executor_factory.ExecutorFactory,
	repository officerByEmailReader,
	encoder encoder,
	passwordComparer passwordComparer,
	clock clock.Clock,
	tokenLifetime time.Duration,
) *Generator {
	return &Generator{
		executorFactory:  executorFactory,
		repository:       repository,
		encoder:          encoder,
		passwordComparer: passwordComparer,
		clock:            clock,
		tokenLifetime:    tokenLifetime,
	}
}
