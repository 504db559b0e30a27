package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/checkmarble/marble-todos/usecases"
	"github.com/checkmarble/marble-todos/utils"
)

func handleLivenessProbe(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		usecase := uc.NewLivenessUsecase()
		if err := usecase.Liveness(c.Request.Context()); err != nil {
			utils.LogAndReportSentryError(c.Request.Context(), err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"database": false,
				"version":  uc.ApiVersion(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"database": true,
			"version":  uc.ApiVersion(),
		})
	}
}
