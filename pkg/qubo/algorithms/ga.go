package algorithms

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"k8s.io/klog/v2"

	"github.com/qubo-ga/qubo-ga/pkg/qubo/framework"
)

const (
	Name = "GA"
)

// ErrFallbackOutOfRange is returned by Run when the KeyIndex fallback policy
// produces a winner that does not index the population.
var ErrFallbackOutOfRange = errors.New("fallback winner is not a population index")

// GA represents the genetic algorithm configuration. A GA must not be used by
// more than one Run at a time.
type GA struct {
	MaxGenerations int
	CrossoverRate  float64
	MutationRate   float64
	Threshold      float64
	Fallback       framework.FallbackPolicy

	Objective framework.ObjectiveFunc
	Rand      framework.RandSource

	// OnGeneration, if set, is called once per evaluated generation.
	OnGeneration func(framework.GenerationStats)
}

// NewGA creates a GA for the problem with the default parameters.
func NewGA(problem framework.Problem, r framework.RandSource) *GA {
	return &GA{
		MaxGenerations: framework.MaxGenerations,
		CrossoverRate:  framework.CrossoverProbability,
		MutationRate:   framework.MutationRate,
		Threshold:      framework.ConvergenceThreshold,
		Fallback:       framework.FallbackPopulationIndex,
		Objective:      problem.Objective(),
		Rand:           r,
	}
}

func (g *GA) Name() string {
	return Name
}

// Initialize creates an initial random population of individuals
func (g *GA) Initialize() framework.Population {
	var pop framework.Population
	for i := range pop {
		pop[i] = framework.Chromosome{Genotype: framework.RandomGenotype(g.Rand)}
	}
	return pop
}

// Run executes the GA until the population converges or MaxGenerations
// rounds have been executed. History holds one entry per round, plus one for
// the population the run converged on.
func (g *GA) Run(ctx context.Context) (*framework.Result, error) {
	logger := klog.FromContext(ctx)

	pop := g.Initialize()
	res := &framework.Result{State: framework.StateRunning}
	best := bestTracker{}

	for gen := 0; gen < g.MaxGenerations; gen++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res.Decision = g.Converged(&pop)
		if res.Decision.Stop {
			res.State = framework.StateConverged
			// the converged population is evaluated for the record only
			g.Evaluate(&pop)
			g.observe(logger, res, &best, gen, &pop)
			break
		}

		evaluated := g.Select(&pop)
		g.observe(logger, res, &best, gen, &evaluated)

		g.Crossover(&pop)
		g.Mutate(&pop)
		res.Generations++
	}

	if res.State == framework.StateRunning {
		res.State = framework.StateExhausted
	}

	genotype, err := g.winner(&pop, res)
	if err != nil {
		return nil, err
	}
	res.Genotype = genotype
	res.Objective = g.Objective(genotype)
	best.consider(genotype, res.Objective)
	res.BestSeen, res.BestSeenObjective = best.genotype, best.objective

	logger.V(2).Info("GA finished", "state", res.State, "generations", res.Generations,
		"winner", res.Decision.Winner, "genotype", genotype.String(), "objective", res.Objective)
	return res, nil
}

// winner resolves the reported genotype from the last decision.
func (g *GA) winner(pop *framework.Population, res *framework.Result) (framework.Genotype, error) {
	d := res.Decision
	if d.Stop || g.Fallback != framework.FallbackKeyIndex {
		return d.Genotype, nil
	}
	// KeyIndex reads the population as it is after the last mutation round.
	if d.Winner < 0 || d.Winner >= len(pop) {
		return framework.Genotype{}, fmt.Errorf("%w: %d (most frequent key %d)", ErrFallbackOutOfRange, d.Winner, d.ModalKey)
	}
	return pop[d.Winner].Genotype, nil
}

// observe records the stats of an evaluated population.
func (g *GA) observe(logger logr.Logger, res *framework.Result, best *bestTracker, gen int, pop *framework.Population) {
	stats := generationStats(gen, pop, res.Decision)
	res.History = append(res.History, stats)
	best.observe(pop)
	if g.OnGeneration != nil {
		g.OnGeneration(stats)
	}
	logGeneration(logger, stats)
}

func logGeneration(logger logr.Logger, s framework.GenerationStats) {
	logger.V(4).Info("Evaluated generation", "generation", s.Generation,
		"bestObjective", s.BestObjective, "meanObjective", s.MeanObjective,
		"dominantKey", s.DominantKey, "dominantShare", s.DominantShare)
}

func generationStats(gen int, pop *framework.Population, d framework.Decision) framework.GenerationStats {
	objectives := make([]float64, len(pop))
	for i := range pop {
		objectives[i] = pop[i].Objective
	}
	mean, std := stat.MeanStdDev(objectives, nil)
	return framework.GenerationStats{
		Generation:    gen,
		BestObjective: floats.Min(objectives),
		MeanObjective: mean,
		StdDev:        std,
		DominantKey:   d.ModalKey,
		DominantShare: d.Share,
	}
}

type bestTracker struct {
	seen      bool
	genotype  framework.Genotype
	objective float64
}

func (b *bestTracker) observe(pop *framework.Population) {
	for i := range pop {
		b.consider(pop[i].Genotype, pop[i].Objective)
	}
}

func (b *bestTracker) consider(g framework.Genotype, objective float64) {
	if !b.seen || objective < b.objective {
		b.seen, b.genotype, b.objective = true, g, objective
	}
}
