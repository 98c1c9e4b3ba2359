package checks

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hana-sre/cluster-manager/internal/handler"
)

func NewHandler(checksService Service) Handler {
	return Handler{checksService}
}

type Handler struct {
	checksService Service
}

type SelectChecksRequest struct {
	Checks []string `json:"checks" binding:"required,dive,checkid"`
}

// SelectChecks for a cluster
func (h Handler) SelectChecks(c *gin.Context) {
	// swagger:route POST /clusters/{id}/checks selectChecks
	//
	// Select checks
	//
	// Select the checks executed against a cluster...
	//
	// responses:
	//   202: Accepted
	//   400: Error
	//   404: Error
	//   415: Error
	id, err := handler.GetUUIDPathParameter(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var request SelectChecksRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	err = h.checksService.SelectChecks(c.Request.Context(), id, request.Checks)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusAccepted)
}

// RequestExecution of the selected checks for a cluster
func (h Handler) RequestExecution(c *gin.Context) {
	// swagger:route POST /clusters/{id}/checks/request-execution requestChecksExecution
	//
	// Request checks execution
	//
	// Request an execution of the cluster's selected checks...
	//
	// responses:
	//   202: ExecutionRequested
	//   400: Error
	//   404: Error
	//   422: Error
	id, err := handler.GetUUIDPathParameter(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	executionID, err := h.checksService.RequestChecksExecution(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"executionId": executionID})
}
