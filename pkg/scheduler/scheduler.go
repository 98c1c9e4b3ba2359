// Package scheduler periodically re-requests check executions for the whole
// fleet of clusters.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hana-sre/cluster-manager/pkg/model"
)

const maxConcurrentRequests = 4

type clusterService interface {
	FindAll(ctx context.Context) ([]model.Cluster, error)
}

type checksRequestor interface {
	RequestChecksExecution(ctx context.Context, clusterID string) (string, error)
}

func NewScheduler(logger *slog.Logger, interval time.Duration, clusterService clusterService, checksService checksRequestor) *Scheduler {
	return &Scheduler{
		logger:         logger,
		interval:       interval,
		clusterService: clusterService,
		checksService:  checksService,
	}
}

type Scheduler struct {
	logger         *slog.Logger
	interval       time.Duration
	clusterService clusterService
	checksService  checksRequestor
}

// Run sweeps the fleet on a fixed interval until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RequestClustersChecksExecution(ctx)
		}
	}
}

// RequestClustersChecksExecution requests a check execution for every active
// checkable cluster. Each cluster is an independent unit of work, a failure
// for one cluster is logged and never blocks checks for the rest of the
// fleet.
func (s *Scheduler) RequestClustersChecksExecution(ctx context.Context) {
	s.logger.InfoContext(ctx, "Requesting checks execution for all clusters")

	clusters, err := s.clusterService.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to find clusters", "error", err)
		return
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRequests)

	for _, cluster := range clusters {
		if !cluster.Type.Checkable() {
			continue
		}

		g.Go(func() error {
			executionID, err := s.checksService.RequestChecksExecution(ctx, cluster.ID)
			if err != nil {
				s.logger.ErrorContext(ctx, "Failed to request checks execution",
					"clusterId", cluster.ID, "error", err)
				return nil
			}

			s.logger.InfoContext(ctx, "Requested checks execution",
				"clusterId", cluster.ID, "executionId", executionID)
			return nil
		})
	}

	_ = g.Wait()
}
