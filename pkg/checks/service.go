// Package checks submits check executions for clusters to the external
// checks engine and manages the per-cluster check selection.
package checks

import (
	"context"

	"github.com/google/uuid"

	"github.com/hana-sre/cluster-manager/internal/errdef"
	"github.com/hana-sre/cluster-manager/pkg/cluster"
	"github.com/hana-sre/cluster-manager/pkg/event"
	"github.com/hana-sre/cluster-manager/pkg/model"
)

// ExecutionScope marks what kind of group an execution runs against.
const ExecutionScope = "cluster"

// ExecutionRequest is the submission sent to the checks engine. Execution is
// asynchronous, results flow back into the read model through the projection
// pipeline, not through this request.
type ExecutionRequest struct {
	ExecutionID    string                       `json:"execution_id"`
	GroupID        string                       `json:"group_id"`
	Environment    cluster.ExecutionEnvironment `json:"env"`
	Targets        []ExecutionTarget            `json:"targets"`
	SelectedChecks []string                     `json:"selected_checks"`
	Scope          string                       `json:"target_type"`
}

type ExecutionTarget struct {
	AgentID string   `json:"agent_id"`
	Checks  []string `json:"checks"`
}

// SelectChecksCommand is dispatched to the event-sourced write side, which
// owns the persisted check selection. Selection is a write, not a read model
// mutation, so it stays auditable.
type SelectChecksCommand struct {
	ClusterID string   `json:"cluster_id"`
	Checks    []string `json:"checks"`
}

type Engine interface {
	RequestExecution(ctx context.Context, request ExecutionRequest) error
}

type dispatcher interface {
	Dispatch(ctx context.Context, command any) error
}

type clusterService interface {
	Find(ctx context.Context, id string) (model.Cluster, error)
	FindHosts(ctx context.Context, clusterID string) ([]model.Host, error)
	ExecutionEnvironment(ctx context.Context, c model.Cluster) (cluster.ExecutionEnvironment, error)
}

type broadcaster interface {
	Broadcast(event event.Event)
}

func NewService(clusterService clusterService, engine Engine, dispatcher dispatcher, events broadcaster) Service {
	return Service{
		clusterService: clusterService,
		engine:         engine,
		dispatcher:     dispatcher,
		events:         events,
	}
}

type Service struct {
	clusterService clusterService
	engine         Engine
	dispatcher     dispatcher
	events         broadcaster
}

// RequestChecksExecution submits a check execution for the cluster to the
// checks engine. The engine's answer is propagated verbatim, retry policy
// belongs to the engine or an outer scheduler. The returned id identifies
// the submitted execution.
func (s Service) RequestChecksExecution(ctx context.Context, clusterID string) (string, error) {
	c, err := s.clusterService.Find(ctx, clusterID)
	if err != nil {
		return "", err
	}

	if len(c.SelectedChecks) == 0 {
		return "", errdef.NewValidation("no checks selected for cluster %s", clusterID)
	}

	hosts, err := s.clusterService.FindHosts(ctx, clusterID)
	if err != nil {
		return "", err
	}

	environment, err := s.clusterService.ExecutionEnvironment(ctx, c)
	if err != nil {
		return "", err
	}

	targets := make([]ExecutionTarget, len(hosts))
	for i, host := range hosts {
		targets[i] = ExecutionTarget{
			AgentID: host.ID,
			Checks:  c.SelectedChecks,
		}
	}

	executionID := uuid.NewString()
	request := ExecutionRequest{
		ExecutionID:    executionID,
		GroupID:        clusterID,
		Environment:    environment,
		Targets:        targets,
		SelectedChecks: c.SelectedChecks,
		Scope:          ExecutionScope,
	}

	err = s.engine.RequestExecution(ctx, request)
	if err != nil {
		return "", err
	}

	s.events.Broadcast(event.Event{
		Type:    "checks_execution_requested",
		Message: executionID,
	})

	return executionID, nil
}

// SelectChecks dispatches the new check selection for the cluster to the
// write side.
func (s Service) SelectChecks(ctx context.Context, clusterID string, checks []string) error {
	_, err := s.clusterService.Find(ctx, clusterID)
	if err != nil {
		return err
	}

	return s.dispatcher.Dispatch(ctx, SelectChecksCommand{
		ClusterID: clusterID,
		Checks:    checks,
	})
}
