package executor_factory

import (
	"context"

	"github.com/pashagolub/pgxmock/v4"

	"github.com/police-department/evidence-manager/repositories"
)

// ExecutorFactoryStub runs executors and transactions against a pgxmock pool.
type ExecutorFactoryStub struct {
	Mock pgxmock.PgxPoolIface
}

func NewExecutorFactoryStub() ExecutorFactoryStub {
	pool, _ := pgxmock.NewPool()

	return ExecutorFactoryStub{
		Mock: pool,
	}
}

type PgExecutorStub struct {
	pgxmock.PgxPoolIface
}

func (stub ExecutorFactoryStub) NewExecutor() repositories.Executor {
	return PgExecutorStub{
		stub.Mock,
	}
}

func (stub ExecutorFactoryStub) Transaction(
	ctx context.Context,
	fn func(tx repositories.Transaction) error,
) error {
	return repositories.NewExecutorGetter(stub.Mock).Transaction(ctx, fn)
}
