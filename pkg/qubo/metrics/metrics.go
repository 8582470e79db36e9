package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/qubo-ga/qubo-ga/pkg/qubo/framework"
)

const namespace = "quboga"

// Recorder holds the collectors of a solver process on its own registry.
type Recorder struct {
	Registry *prometheus.Registry

	runs          *prometheus.CounterVec
	generations   prometheus.Histogram
	evaluated     prometheus.Counter
	bestObjective *prometheus.GaugeVec
	dominantShare prometheus.Gauge
}

func NewRecorder() *Recorder {
	r := &Recorder{
		Registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Finished GA runs by final state.",
		}, []string{"problem", "state"}),
		generations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_generations",
			Help:      "Generations executed per run.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 200, framework.MaxGenerations},
		}),
		evaluated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_evaluated_total",
			Help:      "Populations evaluated across all runs, the converged one included.",
		}),
		bestObjective: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_objective",
			Help:      "Objective of the reported genotype of the last run.",
		}, []string{"problem"}),
		dominantShare: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dominant_share",
			Help:      "Share of the most frequent genotype in the last evaluated generation.",
		}),
	}
	r.Registry.MustRegister(r.runs, r.generations, r.evaluated, r.bestObjective, r.dominantShare)
	return r
}

// ObserveGeneration is meant to be used as the GA OnGeneration hook.
func (r *Recorder) ObserveGeneration(s framework.GenerationStats) {
	r.evaluated.Inc()
	r.dominantShare.Set(s.DominantShare)
}

// ObserveRun records a finished run.
func (r *Recorder) ObserveRun(problem string, res *framework.Result) {
	r.runs.WithLabelValues(problem, string(res.State)).Inc()
	r.generations.Observe(float64(res.Generations))
	r.bestObjective.WithLabelValues(problem).Set(res.Objective)
}

// WriteToTextfile dumps the registry in the text exposition format.
func (r *Recorder) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.Registry)
}
