package app

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	cliflag "k8s.io/component-base/cli/flag"
	"k8s.io/component-base/term"
	"k8s.io/klog/v2"

	"github.com/qubo-ga/qubo-ga/pkg/qubo"
)

// NewSolverCommand creates a *cobra.Command object with default parameters
func NewSolverCommand() *cobra.Command {
	opts := NewOptions()

	cmd := &cobra.Command{
		Use:   "quboga",
		Short: "Minimize xᵗWx over x ∈ {0,1}⁸ with a genetic algorithm",
		Long: `quboga runs a genetic algorithm on the QUBO8 instance and prints the
genes of the winning genotype as space separated 0/1 values.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.Context(), opts, cmd.Flags().Changed, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		Args: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				if len(arg) > 0 {
					return fmt.Errorf("%q does not take any arguments, got %q", cmd.CommandPath(), args)
				}
			}
			return nil
		},
	}

	nfs := opts.Flags()
	fs := cmd.Flags()
	for _, f := range nfs.FlagSets {
		fs.AddFlagSet(f)
	}

	cols, _, _ := term.TerminalSize(cmd.OutOrStdout())
	cliflag.SetUsageAndHelpFunc(cmd, nfs, cols)

	return cmd
}

// Run solves once, prints the winner to stdout and writes the configured artifacts.
func Run(ctx context.Context, opts *Options, changed func(string) bool, stdout, stderr io.Writer) error {
	logger := klog.FromContext(ctx)

	args, err := opts.Config(changed)
	if err != nil {
		return err
	}

	solver, err := qubo.New(ctx, args)
	if err != nil {
		return err
	}

	report, err := solver.Solve(ctx)
	if err != nil {
		return err
	}
	if report.Seed != nil {
		logger.V(1).Info("Solver seed", "seed", *report.Seed)
	}

	if _, err := fmt.Fprintln(stdout, report.Genotype); err != nil {
		return err
	}
	return solver.Export(ctx, report, stderr)
}
