/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	// GroupName is the config group of the solver arguments
	GroupName = "config.quboga.io"
	// Version of this API
	Version = "v1alpha1"
	// Kind of QUBOSolverArgs documents
	Kind = "QUBOSolverArgs"
)

// SchemeGroupVersion is the apiVersion QUBOSolverArgs documents carry
var SchemeGroupVersion = GroupName + "/" + Version

// QUBOSolverArgs holds the arguments used to configure a solver run.
// The problem dimensions and GA rates are fixed and cannot be configured here.
type QUBOSolverArgs struct {
	metav1.TypeMeta `json:",inline"`

	// Seed for the random source. When unset the wall clock is used and the
	// chosen seed is reported.
	Seed *uint64 `json:"seed,omitempty"`

	// FallbackPolicy decides which genotype is reported when the population
	// never converges
	// +kubebuilder:validation:Enum=PopulationIndex;KeyIndex
	FallbackPolicy FallbackPolicy `json:"fallbackPolicy,omitempty"`

	// FitnessCache configures memoization of objective values
	FitnessCache *FitnessCacheArgs `json:"fitnessCache,omitempty"`

	// Report configures the machine readable run report
	Report *ReportArgs `json:"report,omitempty"`

	// PlotPath is where the convergence chart is written, if set
	PlotPath string `json:"plotPath,omitempty"`

	// MetricsPath is where metrics are written in the Prometheus text format, if set
	MetricsPath string `json:"metricsPath,omitempty"`
}

// FallbackPolicy represents how a non converged run picks its result
type FallbackPolicy string

const (
	// FallbackPopulationIndex reports the first individual carrying the most frequent genotype
	FallbackPopulationIndex FallbackPolicy = "PopulationIndex"

	// FallbackKeyIndex uses the most frequent genotype key as a population index.
	// Runs fail when that key does not index the population.
	FallbackKeyIndex FallbackPolicy = "KeyIndex"
)

// FitnessCacheArgs configures the objective cache
type FitnessCacheArgs struct {
	// Enabled turns the cache on
	Enabled *bool `json:"enabled,omitempty"`

	// TTL of cached entries. Zero keeps entries for the whole run
	TTL *metav1.Duration `json:"ttl,omitempty"`
}

// ReportFormat is the encoding of the run report
type ReportFormat string

const (
	ReportFormatYAML ReportFormat = "yaml"
	ReportFormatJSON ReportFormat = "json"
)

// ReportArgs configures the run report
type ReportArgs struct {
	// Format of the report
	// +kubebuilder:validation:Enum=yaml;json
	Format ReportFormat `json:"format,omitempty"`

	// Path of the report file. "-" writes to stderr.
	Path string `json:"path"`
}
