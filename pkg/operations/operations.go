// Package operations dispatches remote operations against clusters and
// their hosts through the external operations engine.
package operations

// Kind identifies an operation as exposed by the API.
type Kind string

const (
	KindClusterMaintenanceChange Kind = "cluster_maintenance_change"
	KindSaptuneSolutionApply     Kind = "saptune_solution_apply"
	KindSaptuneSolutionChange    Kind = "saptune_solution_change"
	KindClusterHostStart         Kind = "cluster_host_start"
	KindClusterHostStop          Kind = "cluster_host_stop"
)

// clusterOperators maps cluster-wide operation kinds to the operator
// identifiers the operations engine executes. An unknown kind has to be
// rejected before any id generation or target resolution happens.
var clusterOperators = map[Kind]string{
	KindClusterMaintenanceChange: "clustermaintenancechange@v1",
}

// hostOperators maps host-scoped operation kinds to engine operators.
var hostOperators = map[Kind]string{
	KindSaptuneSolutionApply:  "saptuneapplysolution@v1",
	KindSaptuneSolutionChange: "saptunechangesolution@v1",
	KindClusterHostStart:      "pacemakerenable@v1",
	KindClusterHostStop:       "pacemakerdisable@v1",
}

// Request is the submission sent to the operations engine.
type Request struct {
	OperationID string   `json:"operation_id"`
	GroupID     string   `json:"group_id"`
	Operator    string   `json:"operator"`
	Targets     []Target `json:"targets"`
}

// Target is a single agent the operation runs on, with its per-target
// arguments. Cluster-wide operations carry the is_dc flag in the arguments
// of exactly one target.
type Target struct {
	AgentID   string         `json:"agent_id"`
	Arguments map[string]any `json:"arguments"`
}
