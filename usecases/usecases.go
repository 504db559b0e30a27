package usecases

import (
	"github.com/checkmarble/marble-todos/repositories"
	"github.com/checkmarble/marble-todos/usecases/executor_factory"
)

type Usecases struct {
	Repositories repositories.Repositories
	apiVersion   string
}

type Option func(*options)

func WithApiVersion(apiVersion string) Option {
	return func(o *options) {
		o.apiVersion = apiVersion
	}
}

type options struct {
	apiVersion string
}

func NewUsecases(repositories repositories.Repositories, opts ...Option) Usecases {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return Usecases{
		Repositories: repositories,
		apiVersion:   o.apiVersion,
	}
}

func (usecases *Usecases) ApiVersion() string {
	return usecases.apiVersion
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewTransactionFactory() executor_factory.TransactionFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		livenessRepository: usecases.Repositories.LivenessRepository,
	}
}

func (usecases *Usecases) NewTodoListUsecase() TodoListUsecase {
	return TodoListUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		listRepository:     usecases.Repositories.ListRepository,
		todoRepository:     usecases.Repositories.TodoRepository,
	}
}
