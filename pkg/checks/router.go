package checks

import (
	"github.com/gin-gonic/gin"
)

func Routes(router *gin.RouterGroup, handler Handler) {
	router.POST("/clusters/:id/checks", handler.SelectChecks)
	router.POST("/clusters/:id/checks/request-execution", handler.RequestExecution)
}
