package cluster

import "github.com/hana-sre/cluster-manager/pkg/model"

// DCPolicy designates one host among the cluster's hosts as the logical
// controller target for controller-only actions. The policy is swappable so
// real controller discovery can replace it without touching the dispatch
// path. It must return false for an empty host list.
type DCPolicy func(hosts []model.Host) (string, bool)

// FirstHostDC designates the first host in stable order. Which physical node
// executes a controller-only action does not affect its correctness, the
// invariant is only that exactly one target is marked, so redundant
// execution is avoided.
func FirstHostDC(hosts []model.Host) (string, bool) {
	if len(hosts) == 0 {
		return "", false
	}
	return hosts[0].ID, true
}
