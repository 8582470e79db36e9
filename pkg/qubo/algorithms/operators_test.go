package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qubo-ga/qubo-ga/pkg/qubo/benchmarks"
	"github.com/qubo-ga/qubo-ga/pkg/qubo/framework"
)

func TestCrossover(t *testing.T) {
	pop := populationOfKeys(0xFF, 0x00, 0xF0, 0x0F, 0xAA, 0x55, 0x81, 0x7E)
	r := &scriptedRand{
		t:      t,
		floats: []float64{0.5, 0.75, 0.1, 0.9},
		ints:   []int{3, 0},
	}
	ga := NewGA(benchmarks.NewQUBO8(), r)

	ga.Crossover(&pop)

	want := [framework.PopulationSize]int{
		0b11100000, 0b00011111, // tails from gene 3 swapped
		0xF0, 0x0F, // 0.75 is not below the crossover rate
		0x55, 0xAA, // point 0 swaps everything
		0x81, 0x7E,
	}
	assert.Equal(t, want, pop.Keys())
	assert.Empty(t, r.floats)
	assert.Empty(t, r.ints)
}

func TestCrossoverPreservesGenesPerPair(t *testing.T) {
	r := newSeeded(21)
	ga := NewGA(benchmarks.NewQUBO8(), r)
	ga.CrossoverRate = 1

	for round := 0; round < 200; round++ {
		pop := ga.Initialize()
		before := pop

		ga.Crossover(&pop)

		for i := 0; i < framework.PopulationSize; i += 2 {
			for j := 0; j < framework.ChromosomeLength; j++ {
				// column-wise the pair either kept or exchanged its genes
				kept := pop[i].Genotype[j] == before[i].Genotype[j] && pop[i+1].Genotype[j] == before[i+1].Genotype[j]
				swapped := pop[i].Genotype[j] == before[i+1].Genotype[j] && pop[i+1].Genotype[j] == before[i].Genotype[j]
				assert.True(t, kept || swapped, "pair %d gene %d", i, j)
			}
			assert.Equal(t,
				before[i].Genotype.OnesCount()+before[i+1].Genotype.OnesCount(),
				pop[i].Genotype.OnesCount()+pop[i+1].Genotype.OnesCount())
		}
	}
}

func TestMutateFlipsOnlyTriggeredGenes(t *testing.T) {
	floats := make([]float64, framework.PopulationSize*framework.ChromosomeLength)
	for i := range floats {
		floats[i] = 0.5
	}
	triggered := map[[2]int]bool{{0, 0}: true, {2, 7}: true, {5, 3}: true, {7, 7}: true}
	for gene := range triggered {
		floats[gene[0]*framework.ChromosomeLength+gene[1]] = 0.01
	}
	// exactly at the rate does not flip
	floats[3*framework.ChromosomeLength+4] = framework.MutationRate

	pop := populationOfKeys(0x00, 0xFF, 0x0F, 0xF0, 0x3C, 0xC3, 0x99, 0x66)
	before := pop
	r := &scriptedRand{t: t, floats: floats}
	ga := NewGA(benchmarks.NewQUBO8(), r)

	ga.Mutate(&pop)

	for i := range pop {
		for j := 0; j < framework.ChromosomeLength; j++ {
			if triggered[[2]int{i, j}] {
				assert.NotEqual(t, before[i].Genotype[j], pop[i].Genotype[j], "individual %d gene %d", i, j)
			} else {
				assert.Equal(t, before[i].Genotype[j], pop[i].Genotype[j], "individual %d gene %d", i, j)
			}
		}
	}
	assert.Empty(t, r.floats)
}

func TestMutateDisabled(t *testing.T) {
	ga := NewGA(benchmarks.NewQUBO8(), newSeeded(4))
	ga.MutationRate = 0

	pop := ga.Initialize()
	before := pop
	ga.Mutate(&pop)
	assert.Equal(t, before, pop)
}
