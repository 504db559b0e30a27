package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/checkmarble/marble-todos/models"
)

type TodoListUsecase struct {
	mock.Mock
}

func (u *TodoListUsecase) GetLists(ctx context.Context) ([]models.List, error) {
	args := u.Called(ctx)
	return args.Get(0).([]models.List), args.Error(1)
}

func (u *TodoListUsecase) GetList(ctx context.Context, listId int64) (models.List, error) {
	args := u.Called(ctx, listId)
	return args.Get(0).(models.List), args.Error(1)
}

func (u *TodoListUsecase) GetListWithTodos(ctx context.Context, listId int64) (models.ListWithTodos, error) {
	args := u.Called(ctx, listId)
	return args.Get(0).(models.ListWithTodos), args.Error(1)
}

func (u *TodoListUsecase) GetTodo(ctx context.Context, listId, todoId int64) (models.Todo, error) {
	args := u.Called(ctx, listId, todoId)
	return args.Get(0).(models.Todo), args.Error(1)
}

func (u *TodoListUsecase) CreateList(ctx context.Context, input models.CreateListInput) error {
	args := u.Called(ctx, input)
	return args.Error(0)
}

func (u *TodoListUsecase) RenameList(ctx context.Context, input models.RenameListInput) error {
	args := u.Called(ctx, input)
	return args.Error(0)
}

func (u *TodoListUsecase) DeleteList(ctx context.Context, listId int64) error {
	args := u.Called(ctx, listId)
	return args.Error(0)
}

func (u *TodoListUsecase) CreateTodo(ctx context.Context, input models.CreateTodoInput) error {
	args := u.Called(ctx, input)
	return args.Error(0)
}

func (u *TodoListUsecase) DeleteTodo(ctx context.Context, listId, todoId int64) error {
	args := u.Called(ctx, listId, todoId)
	return args.Error(0)
}

func (u *TodoListUsecase) SetTodoStatus(ctx context.Context, input models.UpdateTodoStatusInput) error {
	args := u.Called(ctx, input)
	return args.Error(0)
}

func (u *TodoListUsecase) CompleteAllTodos(ctx context.Context, listId int64) error {
	args := u.Called(ctx, listId)
	return args.Error(0)
}
