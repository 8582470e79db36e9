package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubo-ga/qubo-ga/pkg/qubo/benchmarks"
	"github.com/qubo-ga/qubo-ga/pkg/qubo/framework"
)

func TestEvaluateWeightsAreAtLeastOne(t *testing.T) {
	r := newSeeded(11)
	ga := NewGA(benchmarks.NewQUBO8(), r)

	for round := 0; round < 500; round++ {
		pop := ga.Initialize()
		ga.Evaluate(&pop)

		total := 0.0
		for i := range pop {
			require.GreaterOrEqual(t, pop[i].Fitness, 1.0)
			total += pop[i].Fitness
		}
		require.Greater(t, total, 0.0)
	}
}

func TestEvaluateInvertsRanking(t *testing.T) {
	// objectives: 0, 32, -11, -10, 0, 0, 4, 0
	pop := populationOfKeys(0x00, 0xFF, 0b01001101, 0b00001000, 0x00, 0x00, 0b10000000, 0x00)
	ga := NewGA(benchmarks.NewQUBO8(), newSeeded(1))

	ga.Evaluate(&pop)

	objectives := make([]float64, len(pop))
	fitness := make([]float64, len(pop))
	for i := range pop {
		objectives[i] = pop[i].Objective
		fitness[i] = pop[i].Fitness
	}
	assert.Equal(t, []float64{0, 32, -11, -10, 0, 0, 4, 0}, objectives)
	assert.Equal(t, []float64{33, 1, 44, 43, 33, 33, 29, 33}, fitness)
}

func TestEvaluateUsesTrueMaximumForNegativePopulations(t *testing.T) {
	pop := populationOfKeys(0b01001101, 0b00001000, 0b01001101, 0b00001000, 0b01001101, 0b00001000, 0b01001101, 0b00001000)
	ga := NewGA(benchmarks.NewQUBO8(), newSeeded(1))

	ga.Evaluate(&pop)

	assert.Equal(t, 2.0, pop[0].Fitness)
	assert.Equal(t, 1.0, pop[1].Fitness)
}

func TestSelectIdenticalObjectivesIsUniform(t *testing.T) {
	// every draw lands in its own eighth of the wheel
	draws := []float64{0.01, 0.2, 0.3, 0.45, 0.55, 0.7, 0.8, 0.99}
	ga := NewGA(benchmarks.NewQUBO8(), &scriptedRand{t: t, floats: draws})
	ga.Objective = func(framework.Genotype) float64 { return 7 }
	pop := populationOfKeys(0, 1, 2, 3, 4, 5, 6, 7)

	ga.Select(&pop)

	for i := range pop {
		assert.Equal(t, 1.0, pop[i].Fitness)
		assert.Equal(t, i, pop[i].Genotype.Key(), "slot %d", i)
	}
}

func TestResampleFollowsCumulativeProbabilities(t *testing.T) {
	var pop framework.Population
	for i := range pop {
		pop[i].Genotype = framework.GenotypeFromKey(i)
		pop[i].Fitness = 1
	}
	pop[3].Fitness = 9 // 16 total: individual 3 covers (3/16, 12/16]

	draws := []float64{0, 0.0625, 0.19, 0.5, 0.75, 0.76, 0.999999, 0.125}
	ga := NewGA(benchmarks.NewQUBO8(), &scriptedRand{t: t, floats: draws})

	ga.Resample(&pop)

	assert.Equal(t, [framework.PopulationSize]int{0, 0, 3, 3, 3, 4, 7, 1}, pop.Keys())
}

func TestResamplePicksLastWhenRoundingLeavesAGap(t *testing.T) {
	var pop framework.Population
	for i := range pop {
		pop[i].Genotype = framework.GenotypeFromKey(i)
		pop[i].Fitness = 0.1
	}
	cum := cumulativeProbabilities(&pop)
	draw := cum[len(cum)-1]
	if draw < 1 {
		draw = (draw + 1) / 2
	}

	draws := make([]float64, framework.PopulationSize)
	for i := range draws {
		draws[i] = draw
	}
	ga := NewGA(benchmarks.NewQUBO8(), &scriptedRand{t: t, floats: draws})

	ga.Resample(&pop)

	for i := range pop {
		assert.Equal(t, 7, pop[i].Genotype.Key())
	}
}

func TestSelectIsResampling(t *testing.T) {
	r := newSeeded(5)
	ga := NewGA(benchmarks.NewQUBO8(), r)

	for round := 0; round < 200; round++ {
		pop := ga.Initialize()
		before := map[int]bool{}
		for _, k := range pop.Keys() {
			before[k] = true
		}

		ga.Select(&pop)

		for i, k := range pop.Keys() {
			require.True(t, before[k], "slot %d holds key %d that was not in the old population", i, k)
			require.Equal(t, ga.Objective(pop[i].Genotype), pop[i].Objective)
		}
	}
}

func TestSelectFavoursLowObjective(t *testing.T) {
	problem := benchmarks.NewQUBO8()
	ga := NewGA(problem, newSeeded(9))

	zeros, draws := 0, 0
	for round := 0; round < 1000; round++ {
		pop := populationOfKeys(0, 0, 0, 0, 0xFF, 0, 0, 0)

		ga.Evaluate(&pop)
		require.Equal(t, 0.0, pop[0].Objective)
		require.Equal(t, problem.Sum(), pop[4].Objective)

		ga.Resample(&pop)
		for _, k := range pop.Keys() {
			draws++
			if k == 0 {
				zeros++
			}
		}
	}

	// all-ones weighs 1 against 7×33
	assert.Greater(t, float64(zeros)/float64(draws), 0.98)
}

func TestSelectReturnsEvaluatedPopulation(t *testing.T) {
	draws := make([]float64, framework.PopulationSize)
	ga := NewGA(benchmarks.NewQUBO8(), &scriptedRand{t: t, floats: draws})
	pop := populationOfKeys(0, 0xFF, 0b01001101, 3, 4, 5, 6, 7)

	evaluated := ga.Select(&pop)

	assert.Equal(t, [framework.PopulationSize]int{0, 0xFF, 0b01001101, 3, 4, 5, 6, 7}, evaluated.Keys())
	assert.Equal(t, 32.0, evaluated[1].Objective)
	assert.Equal(t, -11.0, evaluated[2].Objective)
	assert.Equal(t, 1.0, evaluated[1].Fitness)
	// every zero draw picks the first individual
	assert.Equal(t, [framework.PopulationSize]int{}, pop.Keys())
}
