package qubo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"

	"github.com/qubo-ga/qubo-ga/apis/config/v1alpha1"
	"github.com/qubo-ga/qubo-ga/pkg/qubo/framework"
	"github.com/qubo-ga/qubo-ga/pkg/qubo/util"
)

// Report is the machine readable outcome of a solver run.
type Report struct {
	Problem     string          `json:"problem"`
	Algorithm   string          `json:"algorithm"`
	State       framework.State `json:"state"`
	Generations int             `json:"generations"`
	// Winner is the index the last convergence decision reported.
	Winner    int     `json:"winner"`
	Genotype  string  `json:"genotype"`
	Objective float64 `json:"objective"`

	BestSeen          string  `json:"bestSeen"`
	BestSeenObjective float64 `json:"bestSeenObjective"`

	Seed           *uint64                 `json:"seed,omitempty"`
	FallbackPolicy v1alpha1.FallbackPolicy `json:"fallbackPolicy"`
	Duration       metav1.Duration         `json:"duration"`

	History []framework.GenerationStats `json:"history,omitempty"`

	Result *framework.Result `json:"-"`
}

// Encode writes the report in the given format.
func (r *Report) Encode(w io.Writer, format v1alpha1.ReportFormat) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case v1alpha1.ReportFormatYAML, "":
		data, err = yaml.Marshal(r)
	case v1alpha1.ReportFormatJSON:
		data, err = json.MarshalIndent(r, "", "  ")
		data = append(data, '\n')
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// Export writes the artifacts the args ask for: the report, the convergence
// plot and the metrics file. A report path of "-" goes to stderr.
func (s *Solver) Export(ctx context.Context, report *Report, stderr io.Writer) error {
	if r := s.args.Report; r != nil {
		if err := writeReport(report, r, stderr); err != nil {
			return err
		}
	}

	if s.args.PlotPath != "" {
		if len(report.History) == 0 {
			klog.FromContext(ctx).Info("Skipping plot, the initial population already converged", "path", s.args.PlotPath)
		} else if err := util.PlotHistory(report.History, report.Problem, report.Algorithm, s.args.PlotPath); err != nil {
			return fmt.Errorf("writing plot: %w", err)
		}
	}

	if s.args.MetricsPath != "" {
		if err := s.recorder.WriteToTextfile(s.args.MetricsPath); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}

func writeReport(report *Report, args *v1alpha1.ReportArgs, stderr io.Writer) error {
	if args.Path == "-" {
		return report.Encode(stderr, args.Format)
	}

	f, err := os.Create(args.Path)
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if err := report.Encode(f, args.Format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
