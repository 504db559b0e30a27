package api

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/checkmarble/marble-todos/models"
	"github.com/checkmarble/marble-todos/utils"
)

// redirect answers a POST with 303 so that the browser follows with a GET.
func redirect(c *gin.Context, location string) {
	status := http.StatusFound
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		status = http.StatusSeeOther
	}
	c.Redirect(status, location)
}

func listPath(listId int64) string {
	return fmt.Sprintf("/lists/%d", listId)
}

// presentError handles the errors shared by every page: a missing list or todo is a flash
// message and a redirect to the closest page that still exists, anything else is reported
// and answered with the error page.
func (h *TodoListHandler) presentError(c *gin.Context, err error, listId int64) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.ErrTodoNotFound):
		h.session.SetError(c, models.MsgTodoNotFound)
		redirect(c, listPath(listId))
	case errors.Is(err, models.ErrListNotFound), errors.Is(err, models.NotFoundError):
		h.session.SetError(c, models.MsgListNotFound)
		redirect(c, "/lists")
	default:
		ctx := c.Request.Context()
		utils.LogAndReportSentryError(ctx, err)
		h.renderer.HTML(c, http.StatusInternalServerError, pageError, pageData{
			RequestId: utils.RequestIdFromContext(ctx),
		})
	}
	return true
}
