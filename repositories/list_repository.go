package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/checkmarble/marble-todos/models"
	"github.com/checkmarble/marble-todos/repositories/dbmodels"
)

type ListRepository interface {
	AllLists(ctx context.Context, exec Executor) ([]models.List, error)
	GetListById(ctx context.Context, exec Executor, listId int64) (*models.List, error)
	CreateList(ctx context.Context, exec Executor, input models.CreateListInput) error
	RenameList(ctx context.Context, exec Executor, input models.RenameListInput) error
	DeleteList(ctx context.Context, exec Executor, listId int64) error
}

type ListRepositoryPostgresql struct{}

// lists with their todo counters, one row per list even when it has no todo
func selectListsWithCounts() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(
			"l.id",
			"l.name",
			"COUNT(t.id) AS todos_count",
			"COUNT(NULLIF(t.completed, true)) AS todos_remaining_count",
		).
		From(dbmodels.TABLE_LISTS + " AS l").
		LeftJoin(dbmodels.TABLE_TODOS + " AS t ON t.list_id = l.id").
		GroupBy("l.id").
		OrderBy("l.id")
}

func (repo *ListRepositoryPostgresql) AllLists(ctx context.Context, exec Executor) ([]models.List, error) {
	return SqlToListOfModels(ctx, exec, selectListsWithCounts(), dbmodels.AdaptList)
}

func (repo *ListRepositoryPostgresql) GetListById(ctx context.Context, exec Executor, listId int64) (*models.List, error) {
	return SqlToOptionalModel(
		ctx,
		exec,
		selectListsWithCounts().Where(squirrel.Eq{"l.id": listId}),
		dbmodels.AdaptList,
	)
}

func (repo *ListRepositoryPostgresql) CreateList(ctx context.Context, exec Executor, input models.CreateListInput) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_LISTS).
			Columns("name").
			Values(input.Name),
	)
}

func (repo *ListRepositoryPostgresql) RenameList(ctx context.Context, exec Executor, input models.RenameListInput) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_LISTS).
			Set("name", input.Name).
			Where(squirrel.Eq{"id": input.Id}),
	)
}

func (repo *ListRepositoryPostgresql) DeleteList(ctx context.Context, exec Executor, listId int64) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_LISTS).
			Where(squirrel.Eq{"id": listId}),
	)
}
