package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hana-sre/cluster-manager/pkg/model"
)

func TestNewExecutionEnvironmentAscsErs(t *testing.T) {
	newCluster := func(filesystemResourceBased ...bool) model.Cluster {
		sapSystems := make([]model.ClusterSapSystem, len(filesystemResourceBased))
		for i, resourceBased := range filesystemResourceBased {
			sapSystems[i] = model.ClusterSapSystem{
				SID:                     "PRD",
				FilesystemResourceBased: resourceBased,
			}
		}
		return model.Cluster{
			Provider: "azure",
			Type:     model.ClusterTypeAscsErs,
			Details:  model.ClusterDetails{SapSystems: sapSystems},
		}
	}

	t.Run("AllFilesystemsResourceBased", func(t *testing.T) {
		environment := NewExecutionEnvironment(newCluster(true, true), model.EnsaVersionV2)

		assert.Equal(t, model.FilesystemTypeResourceManaged, environment.FilesystemType)
		assert.Equal(t, model.EnsaVersionV2, environment.EnsaVersion)
		assert.Equal(t, model.ClusterTypeAscsErs, environment.ClusterType)
		assert.Equal(t, "azure", environment.Provider)
	})

	t.Run("NoFilesystemResourceBased", func(t *testing.T) {
		environment := NewExecutionEnvironment(newCluster(false, false), model.EnsaVersionV1)

		assert.Equal(t, model.FilesystemTypeSimpleMount, environment.FilesystemType)
	})

	t.Run("MixedFilesystems", func(t *testing.T) {
		environment := NewExecutionEnvironment(newCluster(true, false), model.EnsaVersionMixed)

		assert.Equal(t, model.FilesystemTypeMixed, environment.FilesystemType)
		assert.Equal(t, model.EnsaVersionMixed, environment.EnsaVersion)
	})

	t.Run("NoSapSystems", func(t *testing.T) {
		environment := NewExecutionEnvironment(newCluster(), model.EnsaVersionUnknown)

		assert.Equal(t, model.FilesystemTypeMixed, environment.FilesystemType)
	})

	t.Run("NoHanaFieldsAreSet", func(t *testing.T) {
		environment := NewExecutionEnvironment(newCluster(true), model.EnsaVersionV2)

		assert.Empty(t, environment.ArchitectureType)
		assert.Empty(t, environment.HanaScenario)
	})
}

func TestNewExecutionEnvironmentHanaScaleUp(t *testing.T) {
	newCluster := func(details model.ClusterDetails) model.Cluster {
		return model.Cluster{
			Provider: "aws",
			Type:     model.ClusterTypeHanaScaleUp,
			Details:  details,
		}
	}

	t.Run("AngiArchitecture", func(t *testing.T) {
		cluster := newCluster(model.ClusterDetails{ArchitectureType: "angi"})

		environment := NewExecutionEnvironment(cluster, model.EnsaVersionUnknown)

		assert.Equal(t, model.HanaArchitectureAngi, environment.ArchitectureType)
	})

	t.Run("ArchitectureDefaultsToClassic", func(t *testing.T) {
		for _, architecture := range []string{"", "classic", "something-else"} {
			cluster := newCluster(model.ClusterDetails{ArchitectureType: architecture})

			environment := NewExecutionEnvironment(cluster, model.EnsaVersionUnknown)

			assert.Equal(t, model.HanaArchitectureClassic, environment.ArchitectureType)
		}
	})

	t.Run("Scenario", func(t *testing.T) {
		scenarios := map[string]model.HanaScenario{
			"performance_optimized": model.HanaScenarioPerformanceOptimized,
			"cost_optimized":        model.HanaScenarioCostOptimized,
			"Performance Optimized": model.HanaScenarioUnknown,
			"":                      model.HanaScenarioUnknown,
		}
		for declared, want := range scenarios {
			cluster := newCluster(model.ClusterDetails{HanaScenario: declared})

			environment := NewExecutionEnvironment(cluster, model.EnsaVersionUnknown)

			assert.Equal(t, want, environment.HanaScenario, "declared scenario %q", declared)
		}
	})
}

func TestNewExecutionEnvironmentHanaScaleOut(t *testing.T) {
	cluster := model.Cluster{
		Provider: "gcp",
		Type:     model.ClusterTypeHanaScaleOut,
		Details:  model.ClusterDetails{ArchitectureType: "angi", HanaScenario: "cost_optimized"},
	}

	environment := NewExecutionEnvironment(cluster, model.EnsaVersionUnknown)

	assert.Equal(t, model.HanaArchitectureAngi, environment.ArchitectureType)
	assert.Empty(t, environment.HanaScenario, "scale-out clusters have no scenario")
	assert.Empty(t, environment.FilesystemType)
}

func TestResolveEnsaVersion(t *testing.T) {
	t.Run("SingleDistinctVersion", func(t *testing.T) {
		version := resolveEnsaVersion([]model.EnsaVersion{model.EnsaVersionV2})

		assert.Equal(t, model.EnsaVersionV2, version)
	})

	t.Run("MultipleVersionsAreMixed", func(t *testing.T) {
		version := resolveEnsaVersion([]model.EnsaVersion{model.EnsaVersionV1, model.EnsaVersionV2})

		assert.Equal(t, model.EnsaVersionMixed, version)
	})

	t.Run("NoVersions", func(t *testing.T) {
		version := resolveEnsaVersion(nil)

		assert.Equal(t, model.EnsaVersionMixed, version)
	})
}
