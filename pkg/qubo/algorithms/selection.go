package algorithms

import (
	"github.com/qubo-ga/qubo-ga/pkg/qubo/framework"
)

// Select performs fitness proportionate (roulette wheel) selection biased
// towards low objective values. It returns the evaluated population the
// draws were taken from.
func (g *GA) Select(pop *framework.Population) framework.Population {
	g.Evaluate(pop)
	evaluated := *pop
	g.Resample(pop)
	return evaluated
}

// Evaluate refreshes Objective for every individual and derives Fitness as
// max(Objective) - Objective + 1, so every weight is at least 1 and the lowest
// objective gets the highest weight.
func (g *GA) Evaluate(pop *framework.Population) {
	maxObjective := 0.0
	for i := range pop {
		pop[i].Objective = g.Objective(pop[i].Genotype)
		if i == 0 || pop[i].Objective > maxObjective {
			maxObjective = pop[i].Objective
		}
	}

	for i := range pop {
		pop[i].Fitness = maxObjective - pop[i].Objective + 1
	}
}

// Resample replaces the population with PopulationSize draws, with
// replacement, proportional to Fitness.
func (g *GA) Resample(pop *framework.Population) {
	cumProb := cumulativeProbabilities(pop)

	var next framework.Population
	for i := range next {
		r := g.Rand.Float64()
		// rounding can leave the last cumulative value just under 1
		picked := len(pop) - 1
		for j := range cumProb {
			if r <= cumProb[j] {
				picked = j
				break
			}
		}
		next[i] = pop[picked]
	}

	*pop = next
}

func cumulativeProbabilities(pop *framework.Population) [framework.PopulationSize]float64 {
	total := 0.0
	for i := range pop {
		total += pop[i].Fitness
	}

	var cumProb [framework.PopulationSize]float64
	acc := 0.0
	for i := range pop {
		acc += pop[i].Fitness / total
		cumProb[i] = acc
	}
	return cumProb
}
