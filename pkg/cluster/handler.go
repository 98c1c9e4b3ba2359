package cluster

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hana-sre/cluster-manager/internal/errdef"
	"github.com/hana-sre/cluster-manager/internal/handler"
	"github.com/hana-sre/cluster-manager/pkg/model"
)

func NewHandler(clusterService Service) Handler {
	return Handler{clusterService}
}

type Handler struct {
	clusterService Service
}

// ClusterResponse is a cluster together with its enrichment facts.
type ClusterResponse struct {
	model.Cluster
	CibLastWritten string `json:"cibLastWritten,omitempty"`
}

// FindAll clusters
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /clusters listClusters
	//
	// List clusters
	//
	// List all active clusters...
	//
	// responses:
	//   200: Clusters
	clusters, err := h.clusterService.FindAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, clusters)
}

// Find cluster
func (h Handler) Find(c *gin.Context) {
	// swagger:route GET /clusters/{id} findCluster
	//
	// Find cluster
	//
	// Find a cluster by id...
	//
	// responses:
	//   200: Cluster
	//   400: Error
	//   404: Error
	id, err := handler.GetUUIDPathParameter(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	ctx := c.Request.Context()
	cluster, err := h.clusterService.Find(ctx, id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response := ClusterResponse{Cluster: cluster}
	enrichment, err := h.clusterService.FindEnrichment(ctx, id)
	if err == nil {
		response.CibLastWritten = enrichment.CibLastWritten
	} else if !errdef.IsNotFound(err) {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// FindSapInstancesByHost lists the SAP instances of a host's cluster
func (h Handler) FindSapInstancesByHost(c *gin.Context) {
	// swagger:route GET /hosts/{id}/sap-instances listHostSapInstances
	//
	// List SAP instances
	//
	// List the SAP instances managed by the cluster of the given host...
	//
	// responses:
	//   200: SapInstances
	//   400: Error
	//   404: Error
	id, err := handler.GetUUIDPathParameter(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	sapInstances, err := h.clusterService.FindSapInstancesByHostID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, sapInstances)
}
