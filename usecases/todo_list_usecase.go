package usecases

import (
	"context"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/checkmarble/marble-todos/models"
	"github.com/checkmarble/marble-todos/repositories"
	"github.com/checkmarble/marble-todos/usecases/executor_factory"
	"github.com/checkmarble/marble-todos/utils"
)

const (
	entityList = "list"
	entityTodo = "todo"
)

type TodoListUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	listRepository     repositories.ListRepository
	todoRepository     repositories.TodoRepository
}

func (usecase *TodoListUsecase) GetLists(ctx context.Context) ([]models.List, error) {
	return usecase.listRepository.AllLists(ctx, usecase.executorFactory.NewExecutor())
}

func (usecase *TodoListUsecase) getList(ctx context.Context, exec repositories.Executor, listId int64) (models.List, error) {
	list, err := usecase.listRepository.GetListById(ctx, exec, listId)
	if err != nil {
		return models.List{}, err
	}
	if list == nil {
		return models.List{}, models.ErrListNotFound
	}
	return *list, nil
}

func (usecase *TodoListUsecase) getTodo(ctx context.Context, exec repositories.Executor, listId, todoId int64) (models.Todo, error) {
	todo, err := usecase.todoRepository.GetTodoById(ctx, exec, listId, todoId)
	if err != nil {
		return models.Todo{}, err
	}
	if todo == nil {
		return models.Todo{}, models.ErrTodoNotFound
	}
	return *todo, nil
}

func (usecase *TodoListUsecase) GetList(ctx context.Context, listId int64) (models.List, error) {
	return usecase.getList(ctx, usecase.executorFactory.NewExecutor(), listId)
}

// GetListWithTodos reads the list and its todos in the same transaction, so that the counters
// agree with the todos shown.
func (usecase *TodoListUsecase) GetListWithTodos(ctx context.Context, listId int64) (models.ListWithTodos, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Executor) (models.ListWithTodos, error) {
			list, err := usecase.getList(ctx, tx, listId)
			if err != nil {
				return models.ListWithTodos{}, err
			}
			todos, err := usecase.todoRepository.ListTodos(ctx, tx, listId)
			if err != nil {
				return models.ListWithTodos{}, err
			}
			return models.ListWithTodos{List: list, Todos: todos}, nil
		})
}

// GetTodo checks that both the list and the todo exist.
func (usecase *TodoListUsecase) GetTodo(ctx context.Context, listId, todoId int64) (models.Todo, error) {
	exec := usecase.executorFactory.NewExecutor()
	if _, err := usecase.getList(ctx, exec, listId); err != nil {
		return models.Todo{}, err
	}
	return usecase.getTodo(ctx, exec, listId, todoId)
}

// conflictAsValidationError turns a unique index violation, raised when a concurrent request
// inserted the same name after our check, into the same message the check would have given.
func conflictAsValidationError(err error, message string) error {
	if errors.Is(err, models.ConflictError) {
		return errors.Mark(models.NewValidationError(message), err)
	}
	return err
}

func recordValidationFailure(err error, entity string) {
	if _, ok := models.ValidationMessage(err); ok {
		utils.MetricValidationFailures.WithLabelValues(entity).Inc()
	}
}

func (usecase *TodoListUsecase) CreateList(ctx context.Context, input models.CreateListInput) (err error) {
	defer func() { recordValidationFailure(err, entityList) }()

	exec := usecase.executorFactory.NewExecutor()
	input.Name = strings.TrimSpace(input.Name)

	lists, err := usecase.listRepository.AllLists(ctx, exec)
	if err != nil {
		return err
	}
	if err := models.ValidateListName(input.Name, lists); err != nil {
		return err
	}

	if err := usecase.listRepository.CreateList(ctx, exec, input); err != nil {
		return conflictAsValidationError(err, models.MsgListNameUnique)
	}

	utils.MetricListsCreated.Inc()
	utils.LoggerFromContext(ctx).InfoContext(ctx, "list created", "name", input.Name)
	return nil
}

// RenameList keeps the list untouched by the uniqueness rule when only the case of its
// name changes.
func (usecase *TodoListUsecase) RenameList(ctx context.Context, input models.RenameListInput) (err error) {
	defer func() { recordValidationFailure(err, entityList) }()

	exec := usecase.executorFactory.NewExecutor()
	input.Name = strings.TrimSpace(input.Name)

	current, err := usecase.getList(ctx, exec, input.Id)
	if err != nil {
		return err
	}

	if !models.SameName(current.Name, input.Name) {
		lists, err := usecase.listRepository.AllLists(ctx, exec)
		if err != nil {
			return err
		}
		if err := models.ValidateListName(input.Name, lists); err != nil {
			return err
		}
	}

	if err := usecase.listRepository.RenameList(ctx, exec, input); err != nil {
		return conflictAsValidationError(err, models.MsgListNameUnique)
	}
	return nil
}

func (usecase *TodoListUsecase) DeleteList(ctx context.Context, listId int64) error {
	err := usecase.transactionFactory.Transaction(ctx, func(tx repositories.Executor) error {
		if _, err := usecase.getList(ctx, tx, listId); err != nil {
			return err
		}
		if err := usecase.todoRepository.DeleteTodosOfList(ctx, tx, listId); err != nil {
			return err
		}
		return usecase.listRepository.DeleteList(ctx, tx, listId)
	})
	if err != nil {
		return err
	}

	utils.MetricListsDeleted.Inc()
	utils.LoggerFromContext(ctx).InfoContext(ctx, "list deleted", "list_id", listId)
	return nil
}

func (usecase *TodoListUsecase) CreateTodo(ctx context.Context, input models.CreateTodoInput) (err error) {
	defer func() { recordValidationFailure(err, entityTodo) }()

	exec := usecase.executorFactory.NewExecutor()
	input.Name = strings.TrimSpace(input.Name)

	if _, err := usecase.getList(ctx, exec, input.ListId); err != nil {
		return err
	}
	todos, err := usecase.todoRepository.ListTodos(ctx, exec, input.ListId)
	if err != nil {
		return err
	}
	if err := models.ValidateTodoName(input.Name, todos); err != nil {
		return err
	}

	if err := usecase.todoRepository.CreateTodo(ctx, exec, input); err != nil {
		return conflictAsValidationError(err, models.MsgTodoNameUnique)
	}

	utils.MetricTodosCreated.Inc()
	return nil
}

func (usecase *TodoListUsecase) DeleteTodo(ctx context.Context, listId, todoId int64) error {
	exec := usecase.executorFactory.NewExecutor()
	if _, err := usecase.getList(ctx, exec, listId); err != nil {
		return err
	}
	if _, err := usecase.getTodo(ctx, exec, listId, todoId); err != nil {
		return err
	}
	return usecase.todoRepository.DeleteTodo(ctx, exec, listId, todoId)
}

func (usecase *TodoListUsecase) SetTodoStatus(ctx context.Context, input models.UpdateTodoStatusInput) error {
	exec := usecase.executorFactory.NewExecutor()
	if _, err := usecase.getList(ctx, exec, input.ListId); err != nil {
		return err
	}
	if _, err := usecase.getTodo(ctx, exec, input.ListId, input.TodoId); err != nil {
		return err
	}
	if err := usecase.todoRepository.SetTodoStatus(ctx, exec, input); err != nil {
		return err
	}

	utils.MetricTodoStatusChanges.WithLabelValues(strconv.FormatBool(input.Completed)).Inc()
	return nil
}

func (usecase *TodoListUsecase) CompleteAllTodos(ctx context.Context, listId int64) error {
	exec := usecase.executorFactory.NewExecutor()
	if _, err := usecase.getList(ctx, exec, listId); err != nil {
		return err
	}
	return usecase.todoRepository.CompleteAllTodos(ctx, exec, listId)
}
