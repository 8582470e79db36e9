package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubo-ga/qubo-ga/pkg/qubo/framework"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()

	r.ObserveGeneration(framework.GenerationStats{Generation: 0, DominantShare: 0.25})
	r.ObserveGeneration(framework.GenerationStats{Generation: 1, DominantShare: 0.5})
	r.ObserveRun("QUBO8", &framework.Result{State: framework.StateConverged, Generations: 2, Objective: -11})

	assert.Equal(t, 2.0, testutil.ToFloat64(r.evaluated))
	assert.Equal(t, 0.5, testutil.ToFloat64(r.dominantShare))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.runs.WithLabelValues("QUBO8", "Converged")))
	assert.Equal(t, -11.0, testutil.ToFloat64(r.bestObjective.WithLabelValues("QUBO8")))

	expected := `
# HELP quboga_runs_total Finished GA runs by final state.
# TYPE quboga_runs_total counter
quboga_runs_total{problem="QUBO8",state="Converged"} 1
`
	require.NoError(t, testutil.GatherAndCompare(r.Registry, strings.NewReader(expected), "quboga_runs_total"))
}

func TestWriteToTextfile(t *testing.T) {
	r := NewRecorder()
	r.ObserveRun("QUBO8", &framework.Result{State: framework.StateExhausted, Generations: framework.MaxGenerations})

	path := filepath.Join(t.TempDir(), "quboga.prom")
	require.NoError(t, r.WriteToTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `quboga_runs_total{problem="QUBO8",state="Exhausted"} 1`)
	assert.Contains(t, string(data), "quboga_run_generations_count 1")
}
