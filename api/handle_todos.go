package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/checkmarble/marble-todos/models"
)

const (
	msgTodoCreated       = "The todo was added."
	msgTodoDeleted       = "The todo has been deleted."
	msgTodoCompleted     = "Todo completed."
	msgTodoReverted      = "Todo completion reverted."
	msgAllTodosCompleted = "All Todos completed."
)

func (h *TodoListHandler) CreateTodo(c *gin.Context) {
	ctx := c.Request.Context()
	listId := idParam(c, "list_id")
	todoName := c.PostForm("todo")

	err := h.usecase.CreateTodo(ctx, models.CreateTodoInput{ListId: listId, Name: todoName})
	if message, ok := models.ValidationMessage(err); ok {
		listWithTodos, err := h.usecase.GetListWithTodos(ctx, listId)
		if h.presentError(c, err, listId) {
			return
		}
		h.renderer.HTML(c, http.StatusUnprocessableEntity, pageList, pageData{
			Flash:    Flash{Error: message},
			List:     listWithTodos.List,
			Todos:    sortTodosForDisplay(listWithTodos.Todos),
			TodoName: todoName,
		})
		return
	}
	if h.presentError(c, err, listId) {
		return
	}

	h.session.SetSuccess(c, msgTodoCreated)
	redirect(c, listPath(listId))
}

func (h *TodoListHandler) DeleteTodo(c *gin.Context) {
	listId := idParam(c, "list_id")
	todoId := idParam(c, "todo_id")

	err := h.usecase.DeleteTodo(c.Request.Context(), listId, todoId)
	if h.presentError(c, err, listId) {
		return
	}

	if isAjaxRequest(c) {
		c.Status(http.StatusNoContent)
		return
	}
	h.session.SetSuccess(c, msgTodoDeleted)
	redirect(c, listPath(listId))
}

// UpdateTodoStatus only accepts "true" and "false". Any other value leaves the todo as it is
// and redirects without a message.
func (h *TodoListHandler) UpdateTodoStatus(c *gin.Context) {
	ctx := c.Request.Context()
	listId := idParam(c, "list_id")
	todoId := idParam(c, "todo_id")

	var message string
	var err error
	switch c.PostForm("completed") {
	case "true":
		err = h.usecase.SetTodoStatus(ctx, models.UpdateTodoStatusInput{ListId: listId, TodoId: todoId, Completed: true})
		message = msgTodoCompleted
	case "false":
		err = h.usecase.SetTodoStatus(ctx, models.UpdateTodoStatusInput{ListId: listId, TodoId: todoId, Completed: false})
		message = msgTodoReverted
	default:
		_, err = h.usecase.GetTodo(ctx, listId, todoId)
	}
	if h.presentError(c, err, listId) {
		return
	}

	if message != "" {
		h.session.SetSuccess(c, message)
	}
	redirect(c, listPath(listId))
}

func (h *TodoListHandler) CompleteAllTodos(c *gin.Context) {
	listId := idParam(c, "list_id")

	err := h.usecase.CompleteAllTodos(c.Request.Context(), listId)
	if h.presentError(c, err, listId) {
		return
	}

	h.session.SetSuccess(c, msgAllTodosCompleted)
	redirect(c, listPath(listId))
}
