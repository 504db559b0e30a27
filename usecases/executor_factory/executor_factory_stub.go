package executor_factory

import (
	"github.com/pashagolub/pgxmock/v4"

	"github.com/checkmarble/marble-todos/repositories"
)

// ExecutorFactoryStub hands out a pgxmock pool, for usecase tests that assert on the SQL sent.
type ExecutorFactoryStub struct {
	Mock pgxmock.PgxPoolIface
}

func NewExecutorFactoryStub() ExecutorFactoryStub {
	pool, _ := pgxmock.NewPool()

	return ExecutorFactoryStub{
		Mock: pool,
	}
}

func (stub ExecutorFactoryStub) NewExecutor() repositories.Executor {
	return stub.Mock
}
