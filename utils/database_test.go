package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type dbThing struct {
	Id      int64  `db:"id"`
	Name    string `db:"name"`
	Ignored string `db:"-"`
	NoTag   string
}

func TestColumnList(t *testing.T) {
	assert.Equal(t, []string{"id", "name"}, ColumnList[dbThing]())
	assert.Equal(t, []string{"t.id", "t.name"}, ColumnList[dbThing]("t"))
}
