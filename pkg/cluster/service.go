package cluster

import (
	"context"

	"github.com/hana-sre/cluster-manager/pkg/model"
)

func NewService(clusterRepository *repository) Service {
	return Service{clusterRepository}
}

type Service struct {
	clusterRepository *repository
}

func (s Service) Find(ctx context.Context, id string) (model.Cluster, error) {
	return s.clusterRepository.find(ctx, id)
}

func (s Service) FindAll(ctx context.Context) ([]model.Cluster, error) {
	return s.clusterRepository.findAll(ctx)
}

// FindHosts returns the cluster's active hosts in stable order.
func (s Service) FindHosts(ctx context.Context, clusterID string) ([]model.Host, error) {
	return s.clusterRepository.findHosts(ctx, clusterID)
}

func (s Service) FindHost(ctx context.Context, id string) (model.Host, error) {
	return s.clusterRepository.findHost(ctx, id)
}

// FindClusterIDByHostID returns the id of the cluster the host belongs to.
func (s Service) FindClusterIDByHostID(ctx context.Context, hostID string) (string, error) {
	host, err := s.clusterRepository.findHost(ctx, hostID)
	if err != nil {
		return "", err
	}
	if host.ClusterID == nil {
		return "", nil
	}
	return *host.ClusterID, nil
}

// FindSapInstancesByHostID returns the SAP instances the cluster of the
// given host manages.
func (s Service) FindSapInstancesByHostID(ctx context.Context, hostID string) ([]model.SapInstance, error) {
	host, err := s.clusterRepository.findHost(ctx, hostID)
	if err != nil {
		return nil, err
	}
	if host.ClusterID == nil {
		return nil, nil
	}

	cluster, err := s.clusterRepository.find(ctx, *host.ClusterID)
	if err != nil {
		return nil, err
	}
	return cluster.SapInstances, nil
}

// EnsaVersion derives the ENSA version of an ASCS/ERS cluster from the SAP
// systems owning the clustered application instances. A single distinct
// version wins, anything else is reported as mixed.
func (s Service) EnsaVersion(ctx context.Context, cluster model.Cluster) (model.EnsaVersion, error) {
	versions, err := s.clusterRepository.findEnsaVersions(ctx, cluster)
	if err != nil {
		return model.EnsaVersionUnknown, err
	}

	return resolveEnsaVersion(versions), nil
}

func resolveEnsaVersion(versions []model.EnsaVersion) model.EnsaVersion {
	if len(versions) == 1 {
		return versions[0]
	}
	return model.EnsaVersionMixed
}

// UpdateCibLastWritten records the time the cluster configuration was last
// written, as reported by agent telemetry.
func (s Service) UpdateCibLastWritten(ctx context.Context, clusterID, cibLastWritten string) (model.EnrichmentData, error) {
	enrichment := model.EnrichmentData{
		ClusterID:      clusterID,
		CibLastWritten: cibLastWritten,
	}

	err := s.clusterRepository.upsertEnrichment(ctx, &enrichment)
	if err != nil {
		return model.EnrichmentData{}, err
	}

	return enrichment, nil
}

func (s Service) FindEnrichment(ctx context.Context, clusterID string) (model.EnrichmentData, error) {
	return s.clusterRepository.findEnrichment(ctx, clusterID)
}

// ExecutionEnvironment classifies the cluster into the environment
// descriptor the checks engine selects checks with. The descriptor is
// computed fresh for every execution request.
func (s Service) ExecutionEnvironment(ctx context.Context, cluster model.Cluster) (ExecutionEnvironment, error) {
	ensaVersion := model.EnsaVersionUnknown
	if cluster.Type == model.ClusterTypeAscsErs {
		version, err := s.EnsaVersion(ctx, cluster)
		if err != nil {
			return ExecutionEnvironment{}, err
		}
		ensaVersion = version
	}

	return NewExecutionEnvironment(cluster, ensaVersion), nil
}
