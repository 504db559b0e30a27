package dbmodels

import (
	"github.com/checkmarble/marble-todos/models"
)

const TABLE_LISTS = "lists"

type DBList struct {
	Id                  int64  `db:"id"`
	Name                string `db:"name"`
	TodosCount          int64  `db:"todos_count"`
	TodosRemainingCount int64  `db:"todos_remaining_count"`
}

// counts come out of COUNT() aggregates as bigint
func AdaptList(db DBList) (models.List, error) {
	return models.List{
		Id:                  db.Id,
		Name:                db.Name,
		TodosCount:          int(db.TodosCount),
		TodosRemainingCount: int(db.TodosRemainingCount),
	}, nil
}
