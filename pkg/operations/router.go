package operations

import (
	"github.com/gin-gonic/gin"
)

func Routes(router *gin.RouterGroup, handler Handler) {
	router.POST("/clusters/:id/operations/:operation", handler.RequestOperation)
	router.POST("/clusters/:id/hosts/:hostId/operations/:operation", handler.RequestHostOperation)
}
