package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/checkmarble/marble-todos/models"
	"github.com/checkmarble/marble-todos/repositories/dbmodels"
)

type TodoRepository interface {
	ListTodos(ctx context.Context, exec Executor, listId int64) ([]models.Todo, error)
	GetTodoById(ctx context.Context, exec Executor, listId, todoId int64) (*models.Todo, error)
	CreateTodo(ctx context.Context, exec Executor, input models.CreateTodoInput) error
	DeleteTodo(ctx context.Context, exec Executor, listId, todoId int64) error
	SetTodoStatus(ctx context.Context, exec Executor, input models.UpdateTodoStatusInput) error
	CompleteAllTodos(ctx context.Context, exec Executor, listId int64) error
	DeleteTodosOfList(ctx context.Context, exec Executor, listId int64) error
}

type TodoRepositoryPostgresql struct{}

func (repo *TodoRepositoryPostgresql) ListTodos(ctx context.Context, exec Executor, listId int64) ([]models.Todo, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.ColumnsSelectTodo...).
			From(dbmodels.TABLE_TODOS).
			Where(squirrel.Eq{"list_id": listId}).
			OrderBy("id"),
		dbmodels.AdaptTodo,
	)
}

func (repo *TodoRepositoryPostgresql) GetTodoById(ctx context.Context, exec Executor, listId, todoId int64) (*models.Todo, error) {
	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.ColumnsSelectTodo...).
			From(dbmodels.TABLE_TODOS).
			Where(squirrel.Eq{"id": todoId, "list_id": listId}),
		dbmodels.AdaptTodo,
	)
}

func (repo *TodoRepositoryPostgresql) CreateTodo(ctx context.Context, exec Executor, input models.CreateTodoInput) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_TODOS).
			Columns("list_id", "name").
			Values(input.ListId, input.Name),
	)
}

func (repo *TodoRepositoryPostgresql) DeleteTodo(ctx context.Context, exec Executor, listId, todoId int64) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_TODOS).
			Where(squirrel.Eq{"id": todoId, "list_id": listId}),
	)
}

func (repo *TodoRepositoryPostgresql) SetTodoStatus(ctx context.Context, exec Executor, input models.UpdateTodoStatusInput) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_TODOS).
			Set("completed", input.Completed).
			Where(squirrel.Eq{"id": input.TodoId, "list_id": input.ListId}),
	)
}

func (repo *TodoRepositoryPostgresql) CompleteAllTodos(ctx context.Context, exec Executor, listId int64) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_TODOS).
			Set("completed", true).
			Where(squirrel.Eq{"list_id": listId}),
	)
}

func (repo *TodoRepositoryPostgresql) DeleteTodosOfList(ctx context.Context, exec Executor, listId int64) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_TODOS).
			Where(squirrel.Eq{"list_id": listId}),
	)
}
