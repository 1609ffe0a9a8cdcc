package repositories

import (
	"golang.org/x/crypto/bcrypt"
)

type Repositories struct {
	ExecutorGetter       ExecutorGetter
	DbRepository         *DbRepository
	BlobRepository       BlobRepository
	JwtRepository        *JwtRepository
	BcryptPasswordHasher BcryptPasswordHasher
}

type options struct {
	blobRepository BlobRepository
	jwtRepository  *JwtRepository
	bcryptCost     int
}

type Option func(*options)

func WithBlobRepository(repo BlobRepository) Option {
	return func(o *options) {
		o.blobRepository = repo
	}
}

func WithJwtRepository(repo *JwtRepository) Option {
	return func(o *options) {
		o.jwtRepository = repo
	}
}

func WithBcryptCost(cost int) Option {
	return func(o *options) {
		o.bcryptCost = cost
	}
}

func NewRepositories(pool ConnectionPool, opts ...Option) Repositories {
	o := &options{
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.blobRepository == nil {
		o.blobRepository = NewBlobRepository()
	}

	return Repositories{
		ExecutorGetter:       NewExecutorGetter(pool),
		DbRepository:         &DbRepository{},
		BlobRepository:       o.blobRepository,
		JwtRepository:        o.jwtRepository,
		BcryptPasswordHasher: NewBcryptPasswordHasher(o.bcryptCost),
	}
}
