package model

import "time"

type ClusterType string

const (
	ClusterTypeHanaScaleUp  ClusterType = "hana_scale_up"
	ClusterTypeHanaScaleOut ClusterType = "hana_scale_out"
	ClusterTypeAscsErs      ClusterType = "ascs_ers"
	ClusterTypeUnknown      ClusterType = "unknown"
)

// Checkable returns true if the checks engine knows how to run checks
// against clusters of this type.
func (t ClusterType) Checkable() bool {
	switch t {
	case ClusterTypeHanaScaleUp, ClusterTypeHanaScaleOut, ClusterTypeAscsErs:
		return true
	}
	return false
}

type HanaArchitecture string

const (
	HanaArchitectureClassic HanaArchitecture = "classic"
	HanaArchitectureAngi    HanaArchitecture = "angi"
)

type HanaScenario string

const (
	HanaScenarioPerformanceOptimized HanaScenario = "performance_optimized"
	HanaScenarioCostOptimized        HanaScenario = "cost_optimized"
	HanaScenarioUnknown              HanaScenario = "unknown"
)

type FilesystemType string

const (
	FilesystemTypeResourceManaged FilesystemType = "resource_managed"
	FilesystemTypeSimpleMount     FilesystemType = "simple_mount"
	FilesystemTypeMixed           FilesystemType = "mixed_fs_types"
)

type SapInstanceType string

const (
	SapInstanceTypeApplication SapInstanceType = "application"
	SapInstanceTypeDatabase    SapInstanceType = "database"
)

type Cluster struct {
	ID             string         `json:"id" gorm:"primaryKey"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	Name           string         `json:"name"`
	Provider       string         `json:"provider"`
	Type           ClusterType    `json:"type"`
	Details        ClusterDetails `json:"details" gorm:"serializer:json"`
	SelectedChecks []string       `json:"selectedChecks" gorm:"serializer:json"`
	SapInstances   []SapInstance  `json:"sapInstances" gorm:"serializer:json"`
	DeregisteredAt *time.Time     `json:"deregisteredAt,omitempty"`

	Hosts []Host `json:"hosts,omitempty" gorm:"constraint:OnUpdate:CASCADE"`
}

// ClusterDetails is the cluster-type specific part of the read model. It is
// persisted as a single JSON document since its shape follows the discovered
// cluster topology, not a relational schema.
type ClusterDetails struct {
	ArchitectureType string             `json:"architecture_type,omitempty"`
	HanaScenario     string             `json:"hana_scenario,omitempty"`
	MaintenanceMode  bool               `json:"maintenance_mode"`
	SapSystems       []ClusterSapSystem `json:"sap_systems,omitempty"`
	Nodes            []ClusterNode      `json:"nodes,omitempty"`
	StoppedResources []ClusterResource  `json:"stopped_resources,omitempty"`
}

type ClusterSapSystem struct {
	SID                     string `json:"sid"`
	FilesystemResourceBased bool   `json:"filesystem_resource_based"`
}

type ClusterNode struct {
	Name      string            `json:"name"`
	Resources []ClusterResource `json:"resources,omitempty"`
}

type ClusterResource struct {
	ID      string          `json:"id"`
	Type    string          `json:"type,omitempty"`
	Managed bool            `json:"managed"`
	Parent  *ParentResource `json:"parent,omitempty"`
}

type ParentResource struct {
	ID      string `json:"id"`
	Managed bool   `json:"managed"`
}

// SapInstance describes an SAP instance the cluster resource manager knows
// about. Instances are value objects owned by the cluster.
type SapInstance struct {
	Name           string          `json:"name"`
	SID            string          `json:"sid"`
	InstanceNumber string          `json:"instance_number"`
	Type           SapInstanceType `json:"type"`
}

// Maintenance returns true if the whole cluster is in maintenance mode.
func (c Cluster) Maintenance() bool {
	return c.Details.MaintenanceMode
}

// ResourceManaged reports whether the resource identified by resourceID is
// under resource manager control. A resource counts as managed if itself or
// its parent group carries the managed flag. The same id can occur on
// several nodes, clone resources do, so every occurrence in the tree is
// considered and a single managed one wins.
func (c Cluster) ResourceManaged(resourceID string) bool {
	for _, resource := range c.resources() {
		if resource.ID != resourceID && (resource.Parent == nil || resource.Parent.ID != resourceID) {
			continue
		}
		if resource.Managed || (resource.Parent != nil && resource.Parent.Managed) {
			return true
		}
	}
	return false
}

func (c Cluster) resources() []ClusterResource {
	var resources []ClusterResource
	for _, node := range c.Details.Nodes {
		resources = append(resources, node.Resources...)
	}
	return append(resources, c.Details.StoppedResources...)
}

// EnrichmentData holds facts about a cluster discovered out-of-band, such as
// the time the cluster configuration was last written by the resource
// manager. It is a cache keyed by cluster id, created lazily on first write.
type EnrichmentData struct {
	ClusterID      string    `json:"clusterId" gorm:"primaryKey"`
	CibLastWritten string    `json:"cibLastWritten"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
