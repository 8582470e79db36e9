package util

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubo-ga/qubo-ga/pkg/qubo/framework"
)

func sampleHistory() []framework.GenerationStats {
	return []framework.GenerationStats{
		{Generation: 0, BestObjective: -4, MeanObjective: 6.5, StdDev: 3, DominantKey: 12, DominantShare: 0.25},
		{Generation: 1, BestObjective: -10, MeanObjective: 1.25, StdDev: 2, DominantKey: 8, DominantShare: 0.5},
		{Generation: 2, BestObjective: -11, MeanObjective: -9, StdDev: 1, DominantKey: 77, DominantShare: 0.625},
	}
}

func TestRenderHistory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHistory(&buf, sampleHistory(), "QUBO8", "GA"))

	html := buf.String()
	assert.Contains(t, html, "GA Convergence for QUBO8 Benchmark")
	assert.Contains(t, html, "Best objective")
	assert.Contains(t, html, "Dominant share")
}

func TestRenderHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := RenderHistory(&buf, nil, "QUBO8", "GA")
	assert.EqualError(t, err, "history is empty for QUBO8 Benchmark")
}

func TestPlotHistoryWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.html")
	require.NoError(t, PlotHistory(sampleHistory(), "QUBO8", "GA", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
