package benchmarks

import (
	"gonum.org/v1/gonum/mat"

	"github.com/qubo-ga/qubo-ga/pkg/qubo/framework"
)

const (
	Name = "QUBO8"
)

// referenceWeights is the weight matrix of the QUBO8 instance.
var referenceWeights = [framework.ChromosomeLength][framework.ChromosomeLength]float64{
	{4, -3, 2, 7, 5, -1, 0, 2},
	{-3, 8, -5, 1, 0, -2, 3, -4},
	{2, -5, 7, -6, 1, 3, -4, 5},
	{7, 1, -6, 9, 3, -2, 2, -3},
	{5, 0, 1, 3, -10, -4, 3, -2},
	{-1, -2, 3, -2, -4, 8, 1, -1},
	{0, 3, -4, 2, 3, 1, 7, -6},
	{2, -4, 5, -3, -2, -1, -6, 9},
}

// QUBO is an unconstrained binary quadratic problem: minimize xᵗWx over
// x ∈ {0,1}ⁿ. W does not need to be symmetric.
type QUBO struct {
	name string
	w    *mat.Dense
}

// NewQUBO8 returns the reference instance.
func NewQUBO8() *QUBO {
	data := make([]float64, 0, framework.ChromosomeLength*framework.ChromosomeLength)
	for _, row := range referenceWeights {
		data = append(data, row[:]...)
	}
	return &QUBO{
		name: Name,
		w:    mat.NewDense(framework.ChromosomeLength, framework.ChromosomeLength, data),
	}
}

func (p *QUBO) Name() string {
	return p.name
}

func (p *QUBO) Objective() framework.ObjectiveFunc {
	return p.Evaluate
}

// Evaluate returns Σ_i Σ_j g[i]·g[j]·W[i][j].
func (p *QUBO) Evaluate(g framework.Genotype) float64 {
	x := g.Vector()
	return mat.Inner(x, p.w, x)
}

// Weights returns a copy of W.
func (p *QUBO) Weights() *mat.Dense {
	return mat.DenseCopyOf(p.w)
}

// Sum is Σ W[i][j], the objective of the all-ones genotype.
func (p *QUBO) Sum() float64 {
	return mat.Sum(p.w)
}

// Minimum enumerates the whole key space and returns the optimal genotype.
// Only feasible because the chromosome is short.
func (p *QUBO) Minimum() (framework.Genotype, float64) {
	best := framework.GenotypeFromKey(0)
	bestValue := p.Evaluate(best)
	for key := 1; key < framework.NumKeys; key++ {
		g := framework.GenotypeFromKey(key)
		if v := p.Evaluate(g); v < bestValue {
			best, bestValue = g, v
		}
	}
	return best, bestValue
}
