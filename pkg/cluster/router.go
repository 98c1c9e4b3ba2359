package cluster

import (
	"github.com/gin-gonic/gin"
)

func Routes(router *gin.RouterGroup, handler Handler) {
	router.GET("/clusters", handler.FindAll)
	router.GET("/clusters/:id", handler.Find)
	router.GET("/hosts/:id/sap-instances", handler.FindSapInstancesByHost)
}
