package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hana-sre/cluster-manager/internal/errdef"
)

func DataBinder(c *gin.Context, req interface{}) error {
	if c.ContentType() != "application/json" {
		return errdef.NewUnsupportedMediaType("%s only accepts content of type application/json", c.FullPath())
	}

	if err := c.ShouldBind(req); err != nil {
		return errdef.NewBadRequest("error binding data: %v", err)
	}

	return nil
}
