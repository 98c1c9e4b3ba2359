package operations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hana-sre/cluster-manager/internal/errdef"
	"github.com/hana-sre/cluster-manager/pkg/cluster"
	"github.com/hana-sre/cluster-manager/pkg/event"
	"github.com/hana-sre/cluster-manager/pkg/model"
)

var (
	clusterID = "47d1190f-36a4-4d73-be1a-d6bad2d3c720"
	hostID    = "059d2b09-2b69-4324-b55d-6424a2733af3"
)

func newService(clusterService *mockClusterService, engine *mockEngine) Service {
	return NewService(clusterService, engine, cluster.FirstHostDC, time.Minute, event.NewBroker())
}

func TestRequestOperation(t *testing.T) {
	ctx := context.TODO()

	activeCluster := model.Cluster{ID: clusterID, Type: model.ClusterTypeHanaScaleUp}
	hosts := []model.Host{{ID: "h1"}, {ID: "h2"}, {ID: "h3"}}

	t.Run("FirstHostIsDesignatedController", func(t *testing.T) {
		clusterService := &mockClusterService{}
		clusterService.On("Find", ctx, clusterID).Return(activeCluster, nil)
		clusterService.On("FindHosts", ctx, clusterID).Return(hosts, nil)

		engine := &mockEngine{}
		engine.On("RequestOperation", mock.Anything, mock.MatchedBy(func(request Request) bool {
			return request.GroupID == clusterID &&
				request.Operator == "clustermaintenancechange@v1" &&
				len(request.Targets) == 3 &&
				request.Targets[0].Arguments["is_dc"] == true &&
				request.Targets[1].Arguments["is_dc"] == false &&
				request.Targets[2].Arguments["is_dc"] == false
		})).Return(nil).Twice()

		service := newService(clusterService, engine)

		// the designation is stable across repeated calls for an unchanged host set
		for i := 0; i < 2; i++ {
			operationID, err := service.RequestOperation(ctx, KindClusterMaintenanceChange, clusterID, map[string]any{"maintenance": true})

			require.NoError(t, err)
			_, err = uuid.Parse(operationID)
			assert.NoError(t, err, "operation id should be a fresh uuid")
		}
		engine.AssertExpectations(t)
	})

	t.Run("CallerParamsAreMergedIntoEveryTarget", func(t *testing.T) {
		clusterService := &mockClusterService{}
		clusterService.On("Find", ctx, clusterID).Return(activeCluster, nil)
		clusterService.On("FindHosts", ctx, clusterID).Return(hosts, nil)

		engine := &mockEngine{}
		engine.On("RequestOperation", mock.Anything, mock.MatchedBy(func(request Request) bool {
			for _, target := range request.Targets {
				if target.Arguments["maintenance"] != true {
					return false
				}
			}
			return true
		})).Return(nil)

		service := newService(clusterService, engine)

		_, err := service.RequestOperation(ctx, KindClusterMaintenanceChange, clusterID, map[string]any{"maintenance": true})

		require.NoError(t, err)
		engine.AssertExpectations(t)
	})

	t.Run("UnknownOperationKind", func(t *testing.T) {
		clusterService := &mockClusterService{}
		engine := &mockEngine{}
		service := newService(clusterService, engine)

		_, err := service.RequestOperation(ctx, Kind("cluster_selfdestruct"), clusterID, nil)

		assert.True(t, errdef.IsOperationNotFound(err))
		engine.AssertNotCalled(t, "RequestOperation")
		clusterService.AssertNotCalled(t, "Find")
	})

	t.Run("HostOperationKindIsNotAClusterOperation", func(t *testing.T) {
		clusterService := &mockClusterService{}
		engine := &mockEngine{}
		service := newService(clusterService, engine)

		_, err := service.RequestOperation(ctx, KindSaptuneSolutionApply, clusterID, nil)

		assert.True(t, errdef.IsOperationNotFound(err))
		engine.AssertNotCalled(t, "RequestOperation")
	})

	t.Run("ClusterWithoutHostsSubmitsEmptyTargetList", func(t *testing.T) {
		clusterService := &mockClusterService{}
		clusterService.On("Find", ctx, clusterID).Return(activeCluster, nil)
		clusterService.On("FindHosts", ctx, clusterID).Return([]model.Host{}, nil)

		engine := &mockEngine{}
		engine.On("RequestOperation", mock.Anything, mock.MatchedBy(func(request Request) bool {
			return len(request.Targets) == 0
		})).Return(nil)

		service := newService(clusterService, engine)

		_, err := service.RequestOperation(ctx, KindClusterMaintenanceChange, clusterID, nil)

		require.NoError(t, err)
		engine.AssertExpectations(t)
	})

	t.Run("EngineErrorIsPropagatedVerbatim", func(t *testing.T) {
		clusterService := &mockClusterService{}
		clusterService.On("Find", ctx, clusterID).Return(activeCluster, nil)
		clusterService.On("FindHosts", ctx, clusterID).Return(hosts, nil)

		engineErr := errors.New("engine unavailable")
		engine := &mockEngine{}
		engine.On("RequestOperation", mock.Anything, mock.Anything).Return(engineErr)

		service := newService(clusterService, engine)

		_, err := service.RequestOperation(ctx, KindClusterMaintenanceChange, clusterID, nil)

		assert.Equal(t, engineErr, err)
	})
}

func TestRequestHostOperation(t *testing.T) {
	ctx := context.TODO()

	host := model.Host{ID: hostID, ClusterID: &clusterID}

	t.Run("SingleTargetWithoutDCFlag", func(t *testing.T) {
		clusterService := &mockClusterService{}
		clusterService.On("FindHost", ctx, hostID).Return(host, nil)

		engine := &mockEngine{}
		engine.On("RequestOperation", mock.Anything, mock.MatchedBy(func(request Request) bool {
			if len(request.Targets) != 1 {
				return false
			}
			target := request.Targets[0]
			_, hasDC := target.Arguments["is_dc"]
			return target.AgentID == hostID &&
				request.Operator == "saptuneapplysolution@v1" &&
				target.Arguments["solution"] == "HANA" &&
				!hasDC
		})).Return(nil)

		service := newService(clusterService, engine)

		operationID, err := service.RequestHostOperation(ctx, KindSaptuneSolutionApply, clusterID, hostID, map[string]any{"solution": "HANA"})

		require.NoError(t, err)
		assert.NotEmpty(t, operationID)
		engine.AssertExpectations(t)
	})

	t.Run("UnknownOperationKind", func(t *testing.T) {
		clusterService := &mockClusterService{}
		engine := &mockEngine{}
		service := newService(clusterService, engine)

		_, err := service.RequestHostOperation(ctx, KindClusterMaintenanceChange, clusterID, hostID, nil)

		assert.True(t, errdef.IsOperationNotFound(err), "cluster operation kinds are not host operations")
		clusterService.AssertNotCalled(t, "FindHost")
	})

	t.Run("HostNotInCluster", func(t *testing.T) {
		otherClusterID := "ea2a2392-0001-4962-b5c6-9097828a7686"
		stray := model.Host{ID: hostID, ClusterID: &otherClusterID}

		clusterService := &mockClusterService{}
		clusterService.On("FindHost", ctx, hostID).Return(stray, nil)

		engine := &mockEngine{}
		service := newService(clusterService, engine)

		_, err := service.RequestHostOperation(ctx, KindSaptuneSolutionApply, clusterID, hostID, nil)

		assert.True(t, errdef.IsNotFound(err))
		engine.AssertNotCalled(t, "RequestOperation")
	})

	t.Run("StartStopForbiddenDuringMaintenance", func(t *testing.T) {
		clusterService := &mockClusterService{}
		clusterService.On("FindHost", ctx, hostID).Return(host, nil)
		clusterService.On("Find", ctx, clusterID).Return(model.Cluster{
			ID:      clusterID,
			Details: model.ClusterDetails{MaintenanceMode: true},
		}, nil)

		engine := &mockEngine{}
		service := newService(clusterService, engine)

		_, err := service.RequestHostOperation(ctx, KindClusterHostStart, clusterID, hostID, nil)

		assert.True(t, errdef.IsForbidden(err))
		engine.AssertNotCalled(t, "RequestOperation")
	})
}

type mockClusterService struct{ mock.Mock }

func (m *mockClusterService) Find(ctx context.Context, id string) (model.Cluster, error) {
	called := m.Called(ctx, id)
	return called.Get(0).(model.Cluster), called.Error(1)
}

func (m *mockClusterService) FindHosts(ctx context.Context, clusterID string) ([]model.Host, error) {
	called := m.Called(ctx, clusterID)
	return called.Get(0).([]model.Host), called.Error(1)
}

func (m *mockClusterService) FindHost(ctx context.Context, id string) (model.Host, error) {
	called := m.Called(ctx, id)
	return called.Get(0).(model.Host), called.Error(1)
}

type mockEngine struct{ mock.Mock }

func (m *mockEngine) RequestOperation(ctx context.Context, request Request) error {
	called := m.Called(ctx, request)
	return called.Error(0)
}
