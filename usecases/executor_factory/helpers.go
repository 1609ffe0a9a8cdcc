package executor_factory

import (
	"context"

	"github.com/police-department/evidence-manager/repositories"
)

// helper with generics
func TransactionReturnValue[ReturnType any](
	ctx context.Context,
	factory ExecutorFactory,
	fn func(tx repositories.Transaction) (ReturnType, error),
) (ReturnType, error) {
	var value ReturnType
	transactionErr := factory.Transaction(ctx, func(tx repositories.Transaction) error {
		var fnErr error
		value, fnErr = fn(tx)
		return fnErr
	})
	if transactionErr != nil {
		var zero ReturnType
		return zero, transactionErr
	}
	return value, nil
}
