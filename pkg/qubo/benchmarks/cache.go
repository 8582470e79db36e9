package benchmarks

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/qubo-ga/qubo-ga/pkg/qubo/framework"
)

// CachedProblem memoizes the objective of another problem by genotype key.
type CachedProblem struct {
	framework.Problem

	objective framework.ObjectiveFunc
	cache     *cache.Cache
}

// NewCachedProblem wraps p. Entries expire after ttl; a non-positive ttl
// keeps them for the lifetime of the cache.
func NewCachedProblem(p framework.Problem, ttl time.Duration) *CachedProblem {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &CachedProblem{
		Problem:   p,
		objective: p.Objective(),
		cache:     cache.New(ttl, 2*ttl),
	}
}

func (p *CachedProblem) Objective() framework.ObjectiveFunc {
	return p.evaluate
}

func (p *CachedProblem) evaluate(g framework.Genotype) float64 {
	key := strconv.Itoa(g.Key())
	if v, ok := p.cache.Get(key); ok {
		return v.(float64)
	}
	v := p.objective(g)
	p.cache.SetDefault(key, v)
	return v
}

// Len is the number of memoized genotypes.
func (p *CachedProblem) Len() int {
	return p.cache.ItemCount()
}
