package usecases

import (
	"os"
	"time"

	"github.com/police-department/evidence-manager/repositories"
	"github.com/police-department/evidence-manager/repositories/clock"
	"github.com/police-department/evidence-manager/usecases/executor_factory"
	"github.com/police-department/evidence-manager/usecases/security"
	"github.com/police-department/evidence-manager/usecases/token"
)

const (
	DefaultEvidenceBucketUrl = "file://./evidences?create_dir=true"
	DefaultTokenLifetime     = 2 * time.Hour
)

type Usecases struct {
	Repositories      repositories.Repositories
	evidenceBucketUrl string
	tokenLifetime     time.Duration
	clock             clock.Clock
}

type options struct {
	evidenceBucketUrl string
	tokenLifetime     time.Duration
	clock             clock.Clock
}

type Option func(*options)

func WithEvidenceBucketUrl(bucketUrl string) Option {
	return func(o *options) {
		if bucketUrl != "" {
			o.evidenceBucketUrl = bucketUrl
		}
	}
}

func WithTokenLifetime(lifetime time.Duration) Option {
	return func(o *options) {
		if lifetime > 0 {
			o.tokenLifetime = lifetime
		}
	}
}

func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

func NewUsecases(repositories repositories.Repositories, opts ...Option) Usecases {
	o := &options{
		evidenceBucketUrl: DefaultEvidenceBucketUrl,
		tokenLifetime:     DefaultTokenLifetime,
		clock:             clock.New(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return Usecases{
		Repositories:      repositories,
		evidenceBucketUrl: o.evidenceBucketUrl,
		tokenLifetime:     o.tokenLifetime,
		clock:             o.clock,
	}
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewCaseUseCase() CaseUseCase {
	return CaseUseCase{
		executorFactory:    usecases.NewExecutorFactory(),
		enforceSecurity:    security.EnforceSecurityCaseImpl{},
		repository:         usecases.Repositories.DbRepository,
		evidenceRepository: usecases.Repositories.DbRepository,
		blobRepository:     usecases.Repositories.BlobRepository,
		evidenceBucketUrl:  usecases.evidenceBucketUrl,
		clock:              usecases.clock,
	}
}

func (usecases *Usecases) NewEvidenceUseCase() EvidenceUseCase {
	return EvidenceUseCase{
		executorFactory:   usecases.NewExecutorFactory(),
		enforceSecurity:   security.EnforceSecurityCaseImpl{},
		repository:        usecases.Repositories.DbRepository,
		caseReader:        usecases.Repositories.DbRepository,
		blobRepository:    usecases.Repositories.BlobRepository,
		evidenceBucketUrl: usecases.evidenceBucketUrl,
		clock:             usecases.clock,
	}
}

func (usecases *Usecases) NewOfficerUseCase() OfficerUseCase {
	return OfficerUseCase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.DbRepository,
		passwordHasher:  usecases.Repositories.BcryptPasswordHasher,
		clock:           usecases.clock,
	}
}

func (usecases *Usecases) NewSeedUseCase() SeedUseCase {
	return SeedUseCase{
		officerUseCase: usecases.NewOfficerUseCase(),
		readFile:       os.ReadFile,
	}
}

func (usecases *Usecases) NewLivenessUseCase() LivenessUsecase {
	return LivenessUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		livenessRepository: usecases.Repositories.DbRepository,
	}
}

func (usecases *Usecases) NewTokenGenerator() *token.Generator {
	return token.NewGenerator(
		usecases.NewExecutorFactory(),
		usecases.Repositories.DbRepository,
		usecases.Repositories.JwtRepository,
		usecases.Repositories.BcryptPasswordHasher,
		usecases.clock,
		usecases.tokenLifetime,
	)
}

// NewTokenValidator holds an officer cache and is meant to be built once per server.
func (usecases *Usecases) NewTokenValidator() *token.Validator {
	return token.NewValidator(
		usecases.NewExecutorFactory(),
		usecases.Repositories.DbRepository,
		usecases.Repositories.JwtRepository,
	)
}
