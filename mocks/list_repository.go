package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/checkmarble/marble-todos/models"
	"github.com/checkmarble/marble-todos/repositories"
)

type ListRepository struct {
	mock.Mock
}

func (r *ListRepository) AllLists(ctx context.Context, exec repositories.Executor) ([]models.List, error) {
	args := r.Called(ctx, exec)
	return args.Get(0).([]models.List), args.Error(1)
}

func (r *ListRepository) GetListById(ctx context.Context, exec repositories.Executor, listId int64) (*models.List, error) {
	args := r.Called(ctx, exec, listId)
	return args.Get(0).(*models.List), args.Error(1)
}

func (r *ListRepository) CreateList(ctx context.Context, exec repositories.Executor, input models.CreateListInput) error {
	args := r.Called(ctx, exec, input)
	return args.Error(0)
}

func (r *ListRepository) RenameList(ctx context.Context, exec repositories.Executor, input models.RenameListInput) error {
	args := r.Called(ctx, exec, input)
	return args.Error(0)
}

func (r *ListRepository) DeleteList(ctx context.Context, exec repositories.Executor, listId int64) error {
	args := r.Called(ctx, exec, listId)
	return args.Error(0)
}
