package cluster

import (
	"github.com/hana-sre/cluster-manager/pkg/model"
)

// swagger:parameters findCluster
type _ struct {
	// in: path
	// required: true
	ID string `json:"id"`
}

// swagger:parameters listHostSapInstances
type _ struct {
	// in: path
	// required: true
	ID string `json:"id"`
}

// swagger:response Cluster
type _ struct {
	//in: body
	_ ClusterResponse
}

// swagger:response Clusters
type _ struct {
	//in: body
	_ []model.Cluster
}

// swagger:response SapInstances
type _ struct {
	//in: body
	_ []model.SapInstance
}
