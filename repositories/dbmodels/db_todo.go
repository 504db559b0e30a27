package dbmodels

import (
	"github.com/checkmarble/marble-todos/models"
	"github.com/checkmarble/marble-todos/utils"
)

const TABLE_TODOS = "todos"

type DBTodo struct {
	Id        int64  `db:"id"`
	ListId    int64  `db:"list_id"`
	Name      string `db:"name"`
	Completed bool   `db:"completed"`
}

var ColumnsSelectTodo = utils.ColumnList[DBTodo]()

func AdaptTodo(db DBTodo) (models.Todo, error) {
	return models.Todo{
		Id:        db.Id,
		ListId:    db.ListId,
		Name:      db.Name,
		Completed: db.Completed,
	}, nil
}
