package models

const (
	DisplayClassComplete = "complete"
	DisplayClassEmpty    = "empty"
)

type List struct {
	Id                  int64
	Name                string
	TodosCount          int
	TodosRemainingCount int
}

// A list without any todo is empty, never complete.
func (l List) IsComplete() bool {
	return l.TodosCount > 0 && l.TodosRemainingCount == 0
}

func (l List) DisplayClass() string {
	switch {
	case l.IsComplete():
		return DisplayClassComplete
	case l.TodosCount == 0:
		return DisplayClassEmpty
	default:
		return ""
	}
}

type Todo struct {
	Id        int64
	ListId    int64
	Name      string
	Completed bool
}

func (t Todo) DisplayClass() string {
	if t.Completed {
		return DisplayClassComplete
	}
	return ""
}

type ListWithTodos struct {
	List  List
	Todos []Todo
}

type CreateListInput struct {
	Name string
}

type RenameListInput struct {
	Id   int64
	Name string
}

type CreateTodoInput struct {
	ListId int64
	Name   string
}

type UpdateTodoStatusInput struct {
	ListId    int64
	TodoId    int64
	Completed bool
}
