package operations

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hana-sre/cluster-manager/internal/handler"
)

func NewHandler(operationsService Service) Handler {
	return Handler{operationsService}
}

type Handler struct {
	operationsService Service
}

type OperationRequest struct {
	Params map[string]any `json:"params"`
}

// RequestOperation against a cluster
func (h Handler) RequestOperation(c *gin.Context) {
	// swagger:route POST /clusters/{id}/operations/{operation} requestOperation
	//
	// Request cluster operation
	//
	// Request an operation against all hosts of a cluster...
	//
	// responses:
	//   202: OperationRequested
	//   400: Error
	//   403: Error
	//   404: Error
	//   415: Error
	id, err := handler.GetUUIDPathParameter(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var request OperationRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	kind := Kind(c.Param("operation"))
	operationID, err := h.operationsService.RequestOperation(c.Request.Context(), kind, id, request.Params)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"operationId": operationID})
}

// RequestHostOperation against a single host of a cluster
func (h Handler) RequestHostOperation(c *gin.Context) {
	// swagger:route POST /clusters/{id}/hosts/{hostId}/operations/{operation} requestHostOperation
	//
	// Request host operation
	//
	// Request an operation against a single host of a cluster...
	//
	// responses:
	//   202: OperationRequested
	//   400: Error
	//   403: Error
	//   404: Error
	//   415: Error
	id, err := handler.GetUUIDPathParameter(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	hostID, err := handler.GetUUIDPathParameter(c, "hostId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var request OperationRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	kind := Kind(c.Param("operation"))
	operationID, err := h.operationsService.RequestHostOperation(c.Request.Context(), kind, id, hostID, request.Params)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"operationId": operationID})
}
