package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hana-sre/cluster-manager/internal/errdef"
)

// GetUUIDPathParameter returns the value of the named path parameter,
// validated as a UUID. Entity ids are UUIDs assigned by the discovery
// pipeline.
func GetUUIDPathParameter(c *gin.Context, parameter string) (string, error) {
	value := c.Param(parameter)
	if _, err := uuid.Parse(value); err != nil {
		return "", errdef.NewBadRequest("error parsing %q: %v", parameter, err)
	}
	return value, nil
}
