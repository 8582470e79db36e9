package qubo

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/dustin/go-humanize"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/klog/v2"
	"k8s.io/utils/clock"

	"github.com/qubo-ga/qubo-ga/apis/config/v1alpha1"
	"github.com/qubo-ga/qubo-ga/pkg/qubo/algorithms"
	"github.com/qubo-ga/qubo-ga/pkg/qubo/framework"
	"github.com/qubo-ga/qubo-ga/pkg/qubo/metrics"
)

const (
	Name = "QUBOSolver"
)

// Solver wires a problem, a random source and the GA together according to
// QUBOSolverArgs.
type Solver struct {
	args    *v1alpha1.QUBOSolverArgs
	problem framework.Problem
	ga      *algorithms.GA
	seed    *uint64

	rand     framework.RandSource
	clock    clock.PassiveClock
	recorder *metrics.Recorder
}

type Option func(*Solver)

// WithRandSource replaces the seeded source. The report carries no seed then.
func WithRandSource(r framework.RandSource) Option {
	return func(s *Solver) {
		s.rand = r
	}
}

func WithClock(c clock.PassiveClock) Option {
	return func(s *Solver) {
		s.clock = c
	}
}

func WithRecorder(r *metrics.Recorder) Option {
	return func(s *Solver) {
		s.recorder = r
	}
}

// NewRand returns the random source used for a seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func New(ctx context.Context, args *v1alpha1.QUBOSolverArgs, opts ...Option) (*Solver, error) {
	logger := klog.FromContext(ctx)
	logger.V(5).Info("creating instance of QUBOSolver")

	if args == nil {
		return nil, fmt.Errorf("want args to be of type QUBOSolverArgs, got nil")
	}
	a := args.DeepCopy()
	v1alpha1.SetDefaults_QUBOSolverArgs(a)
	if err := v1alpha1.ValidateQUBOSolverArgs(field.NewPath("args"), a); err != nil {
		return nil, fmt.Errorf("invalid QUBOSolverArgs: %w", err)
	}

	s := &Solver{
		args:  a,
		clock: clock.RealClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.recorder == nil {
		s.recorder = metrics.NewRecorder()
	}
	if s.rand == nil {
		seed := uint64(s.clock.Now().UnixNano())
		if a.Seed != nil {
			seed = *a.Seed
		}
		s.seed = &seed
		s.rand = NewRand(seed)
	}

	s.problem = newProblem(a)
	s.ga = algorithms.NewGA(s.problem, s.rand)
	s.ga.Fallback = framework.FallbackPolicy(a.FallbackPolicy)
	s.ga.OnGeneration = s.recorder.ObserveGeneration

	logger.V(5).Info(fmt.Sprintf("solver %s configured", Name), "problem", s.problem.Name(),
		"fallbackPolicy", a.FallbackPolicy, "fitnessCache", *a.FitnessCache.Enabled)
	return s, nil
}

func (s *Solver) Name() string {
	return Name
}

// Args returns the defaulted arguments the solver runs with.
func (s *Solver) Args() *v1alpha1.QUBOSolverArgs {
	return s.args
}

func (s *Solver) Recorder() *metrics.Recorder {
	return s.recorder
}

// Solve runs the GA once and builds the report.
func (s *Solver) Solve(ctx context.Context) (*Report, error) {
	logger := klog.FromContext(ctx)
	logger.V(5).Info(fmt.Sprintf("running the Solve for %s!", s.Name()))

	start := s.clock.Now()
	res, err := s.ga.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("running %s on %s: %w", s.ga.Name(), s.problem.Name(), err)
	}
	elapsed := s.clock.Since(start)
	s.recorder.ObserveRun(s.problem.Name(), res)

	report := &Report{
		Problem:           s.problem.Name(),
		Algorithm:         s.ga.Name(),
		State:             res.State,
		Generations:       res.Generations,
		Winner:            res.Decision.Winner,
		Genotype:          res.Genotype.String(),
		Objective:         res.Objective,
		BestSeen:          res.BestSeen.String(),
		BestSeenObjective: res.BestSeenObjective,
		Seed:              s.seed,
		FallbackPolicy:    s.args.FallbackPolicy,
		Duration:          metav1.Duration{Duration: elapsed},
		History:           res.History,
		Result:            res,
	}

	switch res.State {
	case framework.StateConverged:
		logger.V(2).Info(fmt.Sprintf("population converged in the %s generation", humanize.Ordinal(res.Generations+1)),
			"genotype", report.Genotype, "objective", res.Objective, "share", res.Decision.Share)
	default:
		logger.V(2).Info(fmt.Sprintf("population did not converge after %s generations", humanize.Comma(int64(res.Generations))),
			"genotype", report.Genotype, "objective", res.Objective, "fallbackPolicy", s.args.FallbackPolicy)
	}
	return report, nil
}
