package cluster

import "github.com/hana-sre/cluster-manager/pkg/model"

// ExecutionEnvironment describes a cluster in the terms the checks engine
// uses to decide which checks apply. Only the fields relevant to the
// cluster's type are set.
type ExecutionEnvironment struct {
	Provider         string                 `json:"provider"`
	ClusterType      model.ClusterType      `json:"cluster_type"`
	FilesystemType   model.FilesystemType   `json:"filesystem_type,omitempty"`
	EnsaVersion      model.EnsaVersion      `json:"ensa_version,omitempty"`
	ArchitectureType model.HanaArchitecture `json:"architecture_type,omitempty"`
	HanaScenario     model.HanaScenario     `json:"hana_scenario,omitempty"`
}

// NewExecutionEnvironment classifies a cluster by its persisted type and
// details. It is a pure function, the ENSA version of an ASCS/ERS cluster
// has to be resolved by the caller beforehand.
func NewExecutionEnvironment(cluster model.Cluster, ensaVersion model.EnsaVersion) ExecutionEnvironment {
	switch cluster.Type {
	case model.ClusterTypeAscsErs:
		return ascsErsEnvironment(cluster, ensaVersion)
	case model.ClusterTypeHanaScaleUp:
		return hanaScaleUpEnvironment(cluster)
	default:
		return hanaEnvironment(cluster)
	}
}

func ascsErsEnvironment(cluster model.Cluster, ensaVersion model.EnsaVersion) ExecutionEnvironment {
	return ExecutionEnvironment{
		Provider:       cluster.Provider,
		ClusterType:    cluster.Type,
		FilesystemType: filesystemType(cluster.Details.SapSystems),
		EnsaVersion:    ensaVersion,
	}
}

func hanaScaleUpEnvironment(cluster model.Cluster) ExecutionEnvironment {
	return ExecutionEnvironment{
		Provider:         cluster.Provider,
		ClusterType:      cluster.Type,
		ArchitectureType: architectureType(cluster),
		HanaScenario:     hanaScenario(cluster),
	}
}

func hanaEnvironment(cluster model.Cluster) ExecutionEnvironment {
	return ExecutionEnvironment{
		Provider:         cluster.Provider,
		ClusterType:      cluster.Type,
		ArchitectureType: architectureType(cluster),
	}
}

// filesystemType reports how an ASCS/ERS cluster manages its filesystems. A
// mix of resource based and simply mounted filesystems across the clustered
// SAP systems is reported as such. Without any discovered SAP system there
// is no uniform flag set to classify, so that degenerate case lands in the
// mixed bucket as well.
func filesystemType(sapSystems []model.ClusterSapSystem) model.FilesystemType {
	if len(sapSystems) == 0 {
		return model.FilesystemTypeMixed
	}

	resourceBased := 0
	for _, sapSystem := range sapSystems {
		if sapSystem.FilesystemResourceBased {
			resourceBased++
		}
	}

	switch resourceBased {
	case len(sapSystems):
		return model.FilesystemTypeResourceManaged
	case 0:
		return model.FilesystemTypeSimpleMount
	default:
		return model.FilesystemTypeMixed
	}
}

func architectureType(cluster model.Cluster) model.HanaArchitecture {
	if cluster.Details.ArchitectureType == string(model.HanaArchitectureAngi) {
		return model.HanaArchitectureAngi
	}
	return model.HanaArchitectureClassic
}

func hanaScenario(cluster model.Cluster) model.HanaScenario {
	switch cluster.Details.HanaScenario {
	case string(model.HanaScenarioPerformanceOptimized):
		return model.HanaScenarioPerformanceOptimized
	case string(model.HanaScenarioCostOptimized):
		return model.HanaScenarioCostOptimized
	default:
		return model.HanaScenarioUnknown
	}
}
