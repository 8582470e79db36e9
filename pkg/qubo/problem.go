package qubo

import (
	"k8s.io/utils/ptr"

	"github.com/qubo-ga/qubo-ga/apis/config/v1alpha1"
	"github.com/qubo-ga/qubo-ga/pkg/qubo/benchmarks"
	"github.com/qubo-ga/qubo-ga/pkg/qubo/framework"
)

// newProblem returns the reference instance, memoized when the fitness cache
// is enabled.
func newProblem(args *v1alpha1.QUBOSolverArgs) framework.Problem {
	var p framework.Problem = benchmarks.NewQUBO8()

	c := args.FitnessCache
	if c == nil || !ptr.Deref(c.Enabled, false) {
		return p
	}
	ttl := v1alpha1.DefaultFitnessCacheTTL.Duration
	if c.TTL != nil {
		ttl = c.TTL.Duration
	}
	return benchmarks.NewCachedProblem(p, ttl)
}
