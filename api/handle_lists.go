package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/checkmarble/marble-todos/models"
	"github.com/checkmarble/marble-todos/pure_utils"
)

const (
	msgListCreated = "The list has been created."
	msgListUpdated = "The list has been updated."
	msgListDeleted = "The list has been deleted."
)

type todoListUsecase interface {
	GetLists(ctx context.Context) ([]models.List, error)
	GetList(ctx context.Context, listId int64) (models.List, error)
	GetListWithTodos(ctx context.Context, listId int64) (models.ListWithTodos, error)
	GetTodo(ctx context.Context, listId, todoId int64) (models.Todo, error)
	CreateList(ctx context.Context, input models.CreateListInput) error
	RenameList(ctx context.Context, input models.RenameListInput) error
	DeleteList(ctx context.Context, listId int64) error
	CreateTodo(ctx context.Context, input models.CreateTodoInput) error
	DeleteTodo(ctx context.Context, listId, todoId int64) error
	SetTodoStatus(ctx context.Context, input models.UpdateTodoStatusInput) error
	CompleteAllTodos(ctx context.Context, listId int64) error
}

type TodoListHandler struct {
	usecase  todoListUsecase
	session  FlashSession
	renderer *Renderer
}

func NewTodoListHandler(usecase todoListUsecase, session FlashSession, renderer *Renderer) *TodoListHandler {
	return &TodoListHandler{
		usecase:  usecase,
		session:  session,
		renderer: renderer,
	}
}

// ids that are not numbers resolve to 0, which no row uses
func idParam(c *gin.Context, name string) int64 {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func isAjaxRequest(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}

func sortListsForDisplay(lists []models.List) []models.List {
	return pure_utils.SortForDisplay(lists, models.List.IsComplete)
}

func sortTodosForDisplay(todos []models.Todo) []models.Todo {
	return pure_utils.SortForDisplay(todos, func(todo models.Todo) bool { return todo.Completed })
}

func (h *TodoListHandler) RedirectToLists(c *gin.Context) {
	redirect(c, "/lists")
}

func (h *TodoListHandler) GetLists(c *gin.Context) {
	lists, err := h.usecase.GetLists(c.Request.Context())
	if h.presentError(c, err, 0) {
		return
	}

	h.renderer.HTML(c, http.StatusOK, pageLists, pageData{
		Flash: h.session.Pop(c),
		Lists: sortListsForDisplay(lists),
	})
}

func (h *TodoListHandler) NewList(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, pageNewList, pageData{
		Flash: h.session.Pop(c),
	})
}

func (h *TodoListHandler) CreateList(c *gin.Context) {
	listName := c.PostForm("list_name")

	err := h.usecase.CreateList(c.Request.Context(), models.CreateListInput{Name: listName})
	if message, ok := models.ValidationMessage(err); ok {
		h.renderer.HTML(c, http.StatusUnprocessableEntity, pageNewList, pageData{
			Flash:    Flash{Error: message},
			ListName: listName,
		})
		return
	}
	if h.presentError(c, err, 0) {
		return
	}

	h.session.SetSuccess(c, msgListCreated)
	redirect(c, "/lists")
}

func (h *TodoListHandler) GetList(c *gin.Context) {
	listId := idParam(c, "list_id")

	listWithTodos, err := h.usecase.GetListWithTodos(c.Request.Context(), listId)
	if h.presentError(c, err, listId) {
		return
	}

	h.renderer.HTML(c, http.StatusOK, pageList, pageData{
		Flash: h.session.Pop(c),
		List:  listWithTodos.List,
		Todos: sortTodosForDisplay(listWithTodos.Todos),
	})
}

func (h *TodoListHandler) EditList(c *gin.Context) {
	listId := idParam(c, "list_id")

	list, err := h.usecase.GetList(c.Request.Context(), listId)
	if h.presentError(c, err, listId) {
		return
	}

	h.renderer.HTML(c, http.StatusOK, pageEditList, pageData{
		Flash:    h.session.Pop(c),
		List:     list,
		ListName: list.Name,
	})
}

func (h *TodoListHandler) RenameList(c *gin.Context) {
	ctx := c.Request.Context()
	listId := idParam(c, "list_id")
	listName := c.PostForm("list_name")

	err := h.usecase.RenameList(ctx, models.RenameListInput{Id: listId, Name: listName})
	if message, ok := models.ValidationMessage(err); ok {
		list, err := h.usecase.GetList(ctx, listId)
		if h.presentError(c, err, listId) {
			return
		}
		h.renderer.HTML(c, http.StatusUnprocessableEntity, pageEditList, pageData{
			Flash:    Flash{Error: message},
			List:     list,
			ListName: listName,
		})
		return
	}
	if h.presentError(c, err, listId) {
		return
	}

	h.session.SetSuccess(c, msgListUpdated)
	redirect(c, listPath(listId))
}

// DeleteList answers an ajax request with the page to go to instead of a redirect.
func (h *TodoListHandler) DeleteList(c *gin.Context) {
	listId := idParam(c, "list_id")

	err := h.usecase.DeleteList(c.Request.Context(), listId)
	if h.presentError(c, err, listId) {
		return
	}

	if isAjaxRequest(c) {
		c.String(http.StatusOK, "/lists")
		return
	}
	h.session.SetSuccess(c, msgListDeleted)
	redirect(c, "/lists")
}

func (h *TodoListHandler) NotFound(c *gin.Context) {
	h.renderer.HTML(c, http.StatusNotFound, pageNotFound, pageData{
		Flash: h.session.Pop(c),
	})
}
