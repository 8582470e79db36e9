package framework

import (
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Problem describes the contract a binary quadratic problem needs to implement.
type Problem interface {
	Name() string

	// Objective returns the function the GA minimizes.
	Objective() ObjectiveFunc
}

// ObjectiveFunc defines the interface for objective functions
type ObjectiveFunc func(Genotype) float64

// RandSource is the randomness the GA consumes. *rand.Rand from math/rand/v2
// satisfies it.
type RandSource interface {
	// IntN returns a uniform int in [0, n).
	IntN(n int) int
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
}

// Genotype is a candidate solution x, one bit per variable.
type Genotype [ChromosomeLength]bool

// RandomGenotype draws every gene independently with equal probability.
func RandomGenotype(r RandSource) Genotype {
	var g Genotype
	for i := range g {
		g[i] = r.IntN(2) == 1
	}
	return g
}

// GenotypeFromKey is the inverse of Key.
func GenotypeFromKey(key int) Genotype {
	var g Genotype
	for i := ChromosomeLength - 1; i >= 0; i-- {
		g[i] = key&1 == 1
		key >>= 1
	}
	return g
}

// Key reads the genotype as an unsigned binary number, most significant bit first.
func (g Genotype) Key() int {
	key := 0
	for _, bit := range g {
		key <<= 1
		if bit {
			key |= 1
		}
	}
	return key
}

// Vector returns the genotype as a 0/1 column vector.
func (g Genotype) Vector() *mat.VecDense {
	data := make([]float64, ChromosomeLength)
	for i, bit := range g {
		if bit {
			data[i] = 1
		}
	}
	return mat.NewVecDense(ChromosomeLength, data)
}

// String renders the genes as space separated 0/1 values.
func (g Genotype) String() string {
	var sb strings.Builder
	for i, bit := range g {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// SwapTail exchanges the genes in [point, ChromosomeLength) between g and other.
func (g *Genotype) SwapTail(other *Genotype, point int) {
	for i := point; i < ChromosomeLength; i++ {
		g[i], other[i] = other[i], g[i]
	}
}

// Flip inverts the gene at i.
func (g *Genotype) Flip(i int) {
	g[i] = !g[i]
}

// OnesCount returns the number of set genes.
func (g Genotype) OnesCount() int {
	n := 0
	for _, bit := range g {
		if bit {
			n++
		}
	}
	return n
}
