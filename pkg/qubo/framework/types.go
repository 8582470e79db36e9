package framework

// Problem dimensions and GA parameters. These are properties of the problem
// instance, not runtime knobs.
const (
	PopulationSize       = 8
	ChromosomeLength     = 8
	MaxGenerations       = 300
	MutationRate         = 0.05
	CrossoverProbability = 0.75
	ConvergenceThreshold = 0.75

	// NumKeys is the size of the genotype key space, 2^ChromosomeLength.
	NumKeys = 1 << ChromosomeLength
)

// Chromosome is a genotype together with the values Selection cached for it.
// Objective and Fitness are only valid right after Selection.
type Chromosome struct {
	Genotype Genotype

	// Objective is the raw xᵗWx value.
	Objective float64
	// Fitness is the inverted selection weight derived from Objective.
	Fitness float64
}

// Population is one generation. Order only matters for crossover pairing.
type Population [PopulationSize]Chromosome

// Keys returns the integer key of every individual, in population order.
func (p *Population) Keys() [PopulationSize]int {
	var keys [PopulationSize]int
	for i := range p {
		keys[i] = p[i].Genotype.Key()
	}
	return keys
}

// State of a GA run.
type State string

const (
	StateRunning   State = "Running"
	StateConverged State = "Converged"
	StateExhausted State = "Exhausted"
)

// Decision is what the convergence detector reports for one population.
type Decision struct {
	Stop bool
	// Winner is the index to report. With the KeyIndex fallback policy it is
	// a key in [0, NumKeys) and is not guaranteed to index the population.
	Winner int
	// ModalKey is the most frequent key, or the key that crossed the
	// threshold when Stop is set.
	ModalKey int
	// Genotype is the genotype whose key is ModalKey.
	Genotype Genotype
	// Share is count(ModalKey) / PopulationSize.
	Share float64
}

// GenerationStats summarizes one generation before it is replaced.
type GenerationStats struct {
	Generation    int     `json:"generation"`
	BestObjective float64 `json:"bestObjective"`
	MeanObjective float64 `json:"meanObjective"`
	StdDev        float64 `json:"stdDev"`
	DominantKey   int     `json:"dominantKey"`
	DominantShare float64 `json:"dominantShare"`
}

// Result is the outcome of a GA run.
type Result struct {
	State State
	// Generations is the number of select/crossover/mutate rounds executed.
	Generations int
	Decision    Decision
	Genotype    Genotype
	Objective   float64

	// BestSeen is the lowest objective genotype evaluated during the run.
	BestSeen          Genotype
	BestSeenObjective float64

	// History has one entry per round and, for a converged run, a last entry
	// for the converged population.
	History []GenerationStats
}

// FallbackPolicy decides what Decision.Winner means when no genotype reaches
// the convergence threshold.
type FallbackPolicy string

const (
	// FallbackPopulationIndex reports the first individual carrying the
	// most frequent key.
	FallbackPopulationIndex FallbackPolicy = "PopulationIndex"
	// FallbackKeyIndex reports the most frequent key itself and uses it as a
	// population index, which is only meaningful for keys below PopulationSize.
	FallbackKeyIndex FallbackPolicy = "KeyIndex"
)
