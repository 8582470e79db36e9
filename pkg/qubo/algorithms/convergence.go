package algorithms

import (
	"github.com/qubo-ga/qubo-ga/pkg/qubo/framework"
)

// Converged scans the population in order and stops at the first individual
// whose key reaches the threshold share. The frequency table is rebuilt on
// every call.
func (g *GA) Converged(pop *framework.Population) framework.Decision {
	table := new(framework.FrequencyTable)
	for i := range pop {
		key := pop[i].Genotype.Key()
		count := table.Add(key)
		share := float64(count) / float64(len(pop))
		if share >= g.Threshold {
			return framework.Decision{
				Stop:     true,
				Winner:   i,
				ModalKey: key,
				Genotype: pop[i].Genotype,
				Share:    share,
			}
		}
	}

	key, count := table.Mode()
	d := framework.Decision{
		ModalKey: key,
		Genotype: framework.GenotypeFromKey(key),
		Share:    float64(count) / float64(len(pop)),
	}
	switch g.Fallback {
	case framework.FallbackKeyIndex:
		d.Winner = key
	default:
		d.Winner = framework.IndexOfKey(pop, key)
	}
	return d
}
