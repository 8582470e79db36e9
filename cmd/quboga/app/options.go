package app

import (
	"flag"
	"fmt"
	"time"

	"github.com/spf13/pflag"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	cliflag "k8s.io/component-base/cli/flag"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"github.com/qubo-ga/qubo-ga/apis/config/v1alpha1"
)

// Options has all the params needed to run a solver.
type Options struct {
	ConfigFile string

	Seed            uint64
	FallbackPolicy  string
	FitnessCache    bool
	FitnessCacheTTL time.Duration

	ReportPath   string
	ReportFormat string
	PlotPath     string
	MetricsPath  string
}

func NewOptions() *Options {
	return &Options{
		FallbackPolicy:  string(v1alpha1.FallbackPopulationIndex),
		FitnessCache:    true,
		FitnessCacheTTL: v1alpha1.DefaultFitnessCacheTTL.Duration,
		ReportFormat:    string(v1alpha1.ReportFormatYAML),
	}
}

// Flags returns the flags grouped by section.
func (o *Options) Flags() cliflag.NamedFlagSets {
	var nfs cliflag.NamedFlagSets

	o.addSolverFlags(nfs.FlagSet("solver"))
	o.addOutputFlags(nfs.FlagSet("output"))

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	nfs.FlagSet("logging").AddGoFlagSet(klogFlags)

	return nfs
}

func (o *Options) addSolverFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigFile, "config", o.ConfigFile, "Path to a QUBOSolverArgs file. Flags set explicitly override its values.")
	fs.Uint64Var(&o.Seed, "seed", o.Seed, "Seed of the random source. Defaults to the wall clock.")
	fs.StringVar(&o.FallbackPolicy, "fallback-policy", o.FallbackPolicy,
		"Result of a run that never converges: PopulationIndex reports the first individual carrying the most frequent genotype, KeyIndex uses that genotype's key as population index and fails when it is out of range.")
	fs.BoolVar(&o.FitnessCache, "fitness-cache", o.FitnessCache, "Memoize objective values by genotype.")
	fs.DurationVar(&o.FitnessCacheTTL, "fitness-cache-ttl", o.FitnessCacheTTL, "Lifetime of memoized objective values. 0 keeps them for the whole run.")
}

func (o *Options) addOutputFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ReportPath, "report", o.ReportPath, "Write a run report to this path, - for stderr.")
	fs.StringVar(&o.ReportFormat, "report-format", o.ReportFormat, "Format of the run report: yaml or json. Requires --report or a report in the config file.")
	fs.StringVar(&o.PlotPath, "plot", o.PlotPath, "Write an HTML convergence chart to this path.")
	fs.StringVar(&o.MetricsPath, "metrics", o.MetricsPath, "Write metrics in the Prometheus text format to this path.")
}

// Config loads the config file, if any, and applies the flags the user set.
// changed reports whether a flag was set on the command line.
func (o *Options) Config(changed func(name string) bool) (*v1alpha1.QUBOSolverArgs, error) {
	args := &v1alpha1.QUBOSolverArgs{}
	if o.ConfigFile != "" {
		loaded, err := v1alpha1.LoadQUBOSolverArgs(o.ConfigFile)
		if err != nil {
			return nil, err
		}
		args = loaded
	}
	fromFile := o.ConfigFile != ""
	apply := func(name string) bool {
		return !fromFile || changed(name)
	}

	if changed("seed") {
		args.Seed = ptr.To(o.Seed)
	}
	if apply("fallback-policy") {
		args.FallbackPolicy = v1alpha1.FallbackPolicy(o.FallbackPolicy)
	}
	if apply("fitness-cache") || apply("fitness-cache-ttl") {
		if args.FitnessCache == nil {
			args.FitnessCache = &v1alpha1.FitnessCacheArgs{}
		}
		if apply("fitness-cache") {
			args.FitnessCache.Enabled = ptr.To(o.FitnessCache)
		}
		if apply("fitness-cache-ttl") {
			args.FitnessCache.TTL = &metav1.Duration{Duration: o.FitnessCacheTTL}
		}
	}
	switch {
	case o.ReportPath != "":
		args.Report = &v1alpha1.ReportArgs{Path: o.ReportPath, Format: v1alpha1.ReportFormat(o.ReportFormat)}
	case changed("report-format") && args.Report == nil:
		return nil, fmt.Errorf("--report-format=%s has no effect without --report or a report in the config file", o.ReportFormat)
	case changed("report-format"):
		args.Report.Format = v1alpha1.ReportFormat(o.ReportFormat)
	}
	if o.PlotPath != "" {
		args.PlotPath = o.PlotPath
	}
	if o.MetricsPath != "" {
		args.MetricsPath = o.MetricsPath
	}
	return args, nil
}
