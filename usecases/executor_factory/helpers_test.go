package executor_factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/checkmarble/marble-todos/repositories"
)

type fakeTransactionFactory struct {
	tx repositories.Executor
}

func (f fakeTransactionFactory) Transaction(ctx context.Context, fn func(tx repositories.Executor) error) error {
	return fn(f.tx)
}

func TestTransactionReturnValue(t *testing.T) {
	stub := NewExecutorFactoryStub()
	factory := fakeTransactionFactory{tx: stub.NewExecutor()}

	t.Run("returns the value computed in the transaction", func(t *testing.T) {
		value, err := TransactionReturnValue(context.Background(), factory,
			func(tx repositories.Executor) (int, error) {
				assert.Equal(t, stub.Mock, tx)
				return 42, nil
			})
		assert.NoError(t, err)
		assert.Equal(t, 42, value)
	})

	t.Run("returns the error of the transaction", func(t *testing.T) {
		_, err := TransactionReturnValue(context.Background(), factory,
			func(tx repositories.Executor) (int, error) {
				return 0, assert.AnError
			})
		assert.ErrorIs(t, err, assert.AnError)
	})
}
