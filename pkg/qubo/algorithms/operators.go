package algorithms

import (
	"github.com/qubo-ga/qubo-ga/pkg/qubo/framework"
)

// Crossover performs single point crossover on the pairs (0,1), (2,3), ...
// Each pair crosses with probability CrossoverRate; genes from the drawn
// point to the end are swapped. Objective and Fitness become stale.
func (g *GA) Crossover(pop *framework.Population) {
	for i := 0; i+1 < len(pop); i += 2 {
		if g.Rand.Float64() < g.CrossoverRate {
			point := g.Rand.IntN(framework.ChromosomeLength)
			pop[i].Genotype.SwapTail(&pop[i+1].Genotype, point)
		}
	}
}

// Mutate performs bit-flip mutation, each gene independently with
// probability MutationRate.
func (g *GA) Mutate(pop *framework.Population) {
	for i := range pop {
		for j := 0; j < framework.ChromosomeLength; j++ {
			if g.Rand.Float64() < g.MutationRate {
				pop[i].Genotype.Flip(j)
			}
		}
	}
}
