package operations

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hana-sre/cluster-manager/internal/errdef"
	"github.com/hana-sre/cluster-manager/pkg/cluster"
	"github.com/hana-sre/cluster-manager/pkg/event"
	"github.com/hana-sre/cluster-manager/pkg/model"
)

type Engine interface {
	RequestOperation(ctx context.Context, request Request) error
}

type clusterService interface {
	Find(ctx context.Context, id string) (model.Cluster, error)
	FindHosts(ctx context.Context, clusterID string) ([]model.Host, error)
	FindHost(ctx context.Context, id string) (model.Host, error)
}

type broadcaster interface {
	Broadcast(event event.Event)
}

func NewService(clusterService clusterService, engine Engine, dcPolicy cluster.DCPolicy, submitTimeout time.Duration, events broadcaster) Service {
	return Service{
		clusterService: clusterService,
		engine:         engine,
		dcPolicy:       dcPolicy,
		submitTimeout:  submitTimeout,
		events:         events,
	}
}

type Service struct {
	clusterService clusterService
	engine         Engine
	dcPolicy       cluster.DCPolicy
	submitTimeout  time.Duration
	events         broadcaster
}

// RequestOperation dispatches a cluster-wide operation. Every active host of
// the cluster becomes a target and exactly one target is flagged as the
// designated controller. The engine's result is propagated verbatim, the
// dispatcher does not retry.
func (s Service) RequestOperation(ctx context.Context, kind Kind, clusterID string, params map[string]any) (string, error) {
	operator, ok := clusterOperators[kind]
	if !ok {
		return "", errdef.NewOperationNotFound("unknown cluster operation: %s", kind)
	}

	c, err := s.clusterService.Find(ctx, clusterID)
	if err != nil {
		return "", err
	}

	hosts, err := s.clusterService.FindHosts(ctx, c.ID)
	if err != nil {
		return "", err
	}

	operationID := uuid.NewString()
	dcHostID, _ := s.dcPolicy(hosts)

	targets := make([]Target, len(hosts))
	for i, host := range hosts {
		arguments := make(map[string]any, len(params)+1)
		for k, v := range params {
			arguments[k] = v
		}
		arguments["is_dc"] = host.ID == dcHostID

		targets[i] = Target{
			AgentID:   host.ID,
			Arguments: arguments,
		}
	}

	err = s.submit(ctx, Request{
		OperationID: operationID,
		GroupID:     clusterID,
		Operator:    operator,
		Targets:     targets,
	})
	if err != nil {
		return "", err
	}

	return operationID, nil
}

// RequestHostOperation dispatches an operation against a single host of the
// cluster. No designated controller flag is injected, the caller-supplied
// params travel as-is.
func (s Service) RequestHostOperation(ctx context.Context, kind Kind, clusterID, hostID string, params map[string]any) (string, error) {
	operator, ok := hostOperators[kind]
	if !ok {
		return "", errdef.NewOperationNotFound("unknown host operation: %s", kind)
	}

	host, err := s.clusterService.FindHost(ctx, hostID)
	if err != nil {
		return "", err
	}
	if host.ClusterID == nil || *host.ClusterID != clusterID {
		return "", errdef.NewNotFound("host %s doesn't belong to cluster %s", hostID, clusterID)
	}

	if kind == KindClusterHostStart || kind == KindClusterHostStop {
		c, err := s.clusterService.Find(ctx, clusterID)
		if err != nil {
			return "", err
		}
		if c.Maintenance() {
			return "", errdef.NewForbidden("cluster %s is in maintenance mode", clusterID)
		}
	}

	if params == nil {
		params = map[string]any{}
	}

	operationID := uuid.NewString()
	err = s.submit(ctx, Request{
		OperationID: operationID,
		GroupID:     clusterID,
		Operator:    operator,
		Targets: []Target{
			{
				AgentID:   hostID,
				Arguments: params,
			},
		},
	})
	if err != nil {
		return "", err
	}

	return operationID, nil
}

// submit hands the request to the engine, bounded by the configured
// submission timeout.
func (s Service) submit(ctx context.Context, request Request) error {
	ctx, cancel := context.WithTimeout(ctx, s.submitTimeout)
	defer cancel()

	err := s.engine.RequestOperation(ctx, request)
	if err != nil {
		return err
	}

	s.events.Broadcast(event.Event{
		Type:    "operation_requested",
		Message: request.OperationID,
	})
	return nil
}
