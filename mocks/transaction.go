package mocks

import (
	"github.com/jackc/pgx/v5"
)

type Transaction struct {
	Executor
}

func (t *Transaction) RawTx() pgx.Tx {
	args := t.Called()
	return args.Get(0).(pgx.Tx)
}
