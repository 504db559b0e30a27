package dbmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/checkmarble/marble-todos/models"
)

func TestAdaptList(t *testing.T) {
	list, err := AdaptList(DBList{Id: 4, Name: "Work", TodosCount: 3, TodosRemainingCount: 1})
	assert.NoError(t, err)
	assert.Equal(t, models.List{Id: 4, Name: "Work", TodosCount: 3, TodosRemainingCount: 1}, list)
}

func TestAdaptTodo(t *testing.T) {
	todo, err := AdaptTodo(DBTodo{Id: 9, ListId: 4, Name: "buy milk", Completed: true})
	assert.NoError(t, err)
	assert.Equal(t, models.Todo{Id: 9, ListId: 4, Name: "buy milk", Completed: true}, todo)
}

func TestColumnsSelectTodo(t *testing.T) {
	assert.Equal(t, []string{"id", "list_id", "name", "completed"}, ColumnsSelectTodo)
}
