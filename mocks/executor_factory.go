package mocks

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/mock"

	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/repositories"
)

type ExecutorFactory struct {
	mock.Mock
	TxMock *Transaction
}

func (e *ExecutorFactory) NewExecutor() repositories.Executor {
	args := e.Called()
	return args.Get(0).(repositories.Executor)
}

// Transaction runs fn with TxMock, like the real factory it swallows ErrIgnoreRollBackError.
func (e *ExecutorFactory) Transaction(ctx context.Context, fn func(tx repositories.Transaction) error) error {
	args := e.Called(ctx, fn)
	err := fn(e.TxMock)
	if errors.Is(err, models.ErrIgnoreRollBackError) {
		return nil
	}
	if err != nil {
		return err
	}
	return args.Error(0)
}
