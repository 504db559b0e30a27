package usecases

import (
	"context"

	"github.com/checkmarble/marble-todos/repositories"
	"github.com/checkmarble/marble-todos/usecases/executor_factory"
)

type livenessRepository interface {
	Liveness(ctx context.Context, exec repositories.Executor) error
}

type LivenessUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	livenessRepository livenessRepository
}

// Liveness checks that a connection can be checked out of the pool and answers a query.
func (u *LivenessUsecase) Liveness(ctx context.Context) error {
	return u.livenessRepository.Liveness(ctx, u.executorFactory.NewExecutor())
}
