package cluster

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hana-sre/cluster-manager/internal/errdef"
	"github.com/hana-sre/cluster-manager/pkg/model"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db}
}

type repository struct {
	db *gorm.DB
}

// active filters out soft-deleted records. Every query in this repository
// goes through it so a deregistered cluster or host can never leak into
// query results or operation targets.
func active(db *gorm.DB) *gorm.DB {
	return db.Where("deregistered_at IS NULL")
}

func (r repository) find(ctx context.Context, id string) (model.Cluster, error) {
	var cluster model.Cluster
	err := r.db.
		WithContext(ctx).
		Scopes(active).
		Preload("Hosts", active).
		Where("id = ?", id).
		First(&cluster).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cluster{}, errdef.NewNotFound("cluster with id %s doesn't exist", id)
	}

	if err != nil {
		return model.Cluster{}, fmt.Errorf("failed to find cluster: %v", err)
	}

	return cluster, nil
}

func (r repository) findAll(ctx context.Context) ([]model.Cluster, error) {
	var clusters []model.Cluster
	err := r.db.
		WithContext(ctx).
		Scopes(active).
		Preload("Hosts", active).
		Order("name, id").
		Find(&clusters).Error
	return clusters, err
}

// findHosts returns the cluster's active hosts in a stable order. The
// designated controller selection relies on this order being deterministic
// across calls.
func (r repository) findHosts(ctx context.Context, clusterID string) ([]model.Host, error) {
	var hosts []model.Host
	err := r.db.
		WithContext(ctx).
		Scopes(active).
		Where("cluster_id = ?", clusterID).
		Order("hostname, id").
		Find(&hosts).Error
	return hosts, err
}

func (r repository) findHost(ctx context.Context, id string) (model.Host, error) {
	var host model.Host
	err := r.db.
		WithContext(ctx).
		Scopes(active).
		Where("id = ?", id).
		First(&host).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Host{}, errdef.NewNotFound("host with id %s doesn't exist", id)
	}

	if err != nil {
		return model.Host{}, fmt.Errorf("failed to find host: %v", err)
	}

	return host, nil
}

// findEnsaVersions returns the distinct ENSA versions of the SAP systems
// owning application instances running on the cluster's hosts. Only
// instances the cluster's resource manager knows about are considered.
func (r repository) findEnsaVersions(ctx context.Context, cluster model.Cluster) ([]model.EnsaVersion, error) {
	hostIDs := make([]string, 0, len(cluster.Hosts))
	for _, host := range cluster.Hosts {
		hostIDs = append(hostIDs, host.ID)
	}
	if len(hostIDs) == 0 {
		return nil, nil
	}

	var instances []model.ApplicationInstance
	err := r.db.
		WithContext(ctx).
		Where("host_id IN ?", hostIDs).
		Find(&instances).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find application instances: %v", err)
	}

	clustered := make(map[string]bool, len(cluster.SapInstances))
	for _, instance := range cluster.SapInstances {
		clustered[instance.SID+"|"+instance.InstanceNumber] = true
	}

	sapSystemIDs := make([]string, 0, len(instances))
	seen := make(map[string]bool)
	for _, instance := range instances {
		if !clustered[instance.SID+"|"+instance.InstanceNumber] || seen[instance.SapSystemID] {
			continue
		}
		seen[instance.SapSystemID] = true
		sapSystemIDs = append(sapSystemIDs, instance.SapSystemID)
	}
	if len(sapSystemIDs) == 0 {
		return nil, nil
	}

	var sapSystems []model.SapSystem
	err = r.db.
		WithContext(ctx).
		Scopes(active).
		Where("id IN ?", sapSystemIDs).
		Find(&sapSystems).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find sap systems: %v", err)
	}

	var versions []model.EnsaVersion
	distinct := make(map[model.EnsaVersion]bool)
	for _, sapSystem := range sapSystems {
		if distinct[sapSystem.EnsaVersion] {
			continue
		}
		distinct[sapSystem.EnsaVersion] = true
		versions = append(versions, sapSystem.EnsaVersion)
	}
	return versions, nil
}

// upsertEnrichment writes derived facts for a cluster. The row is created
// lazily on first write. Last write wins between concurrent writers.
func (r repository) upsertEnrichment(ctx context.Context, enrichment *model.EnrichmentData) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	enrichment.UpdatedAt = time.Now()
	return r.db.
		WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cluster_id"}},
			UpdateAll: true,
		}).
		Create(enrichment).Error
}

func (r repository) findEnrichment(ctx context.Context, clusterID string) (model.EnrichmentData, error) {
	var enrichment model.EnrichmentData
	err := r.db.
		WithContext(ctx).
		Where("cluster_id = ?", clusterID).
		First(&enrichment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.EnrichmentData{}, errdef.NewNotFound("no enrichment data for cluster %s", clusterID)
	}

	if err != nil {
		return model.EnrichmentData{}, fmt.Errorf("failed to find enrichment data: %v", err)
	}

	return enrichment, nil
}
