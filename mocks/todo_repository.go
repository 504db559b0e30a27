package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/checkmarble/marble-todos/models"
	"github.com/checkmarble/marble-todos/repositories"
)

type TodoRepository struct {
	mock.Mock
}

func (r *TodoRepository) ListTodos(ctx context.Context, exec repositories.Executor, listId int64) ([]models.Todo, error) {
	args := r.Called(ctx, exec, listId)
	return args.Get(0).([]models.Todo), args.Error(1)
}

func (r *TodoRepository) GetTodoById(ctx context.Context, exec repositories.Executor, listId, todoId int64) (*models.Todo, error) {
	args := r.Called(ctx, exec, listId, todoId)
	return args.Get(0).(*models.Todo), args.Error(1)
}

func (r *TodoRepository) CreateTodo(ctx context.Context, exec repositories.Executor, input models.CreateTodoInput) error {
	args := r.Called(ctx, exec, input)
	return args.Error(0)
}

func (r *TodoRepository) DeleteTodo(ctx context.Context, exec repositories.Executor, listId, todoId int64) error {
	args := r.Called(ctx, exec, listId, todoId)
	return args.Error(0)
}

func (r *TodoRepository) SetTodoStatus(ctx context.Context, exec repositories.Executor, input models.UpdateTodoStatusInput) error {
	args := r.Called(ctx, exec, input)
	return args.Error(0)
}

func (r *TodoRepository) CompleteAllTodos(ctx context.Context, exec repositories.Executor, listId int64) error {
	args := r.Called(ctx, exec, listId)
	return args.Error(0)
}

func (r *TodoRepository) DeleteTodosOfList(ctx context.Context, exec repositories.Executor, listId int64) error {
	args := r.Called(ctx, exec, listId)
	return args.Error(0)
}
