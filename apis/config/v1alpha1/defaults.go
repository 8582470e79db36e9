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
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
)

// DefaultFitnessCacheTTL is used when the cache is enabled without a TTL
var DefaultFitnessCacheTTL = metav1.Duration{Duration: 5 * time.Minute}

// SetDefaults_QUBOSolverArgs sets the default parameters for a solver run.
func SetDefaults_QUBOSolverArgs(obj *QUBOSolverArgs) {
	if obj.APIVersion == "" {
		obj.APIVersion = SchemeGroupVersion
	}
	if obj.Kind == "" {
		obj.Kind = Kind
	}

	if obj.FallbackPolicy == "" {
		obj.FallbackPolicy = FallbackPopulationIndex
	}

	if obj.FitnessCache == nil {
		obj.FitnessCache = &FitnessCacheArgs{}
	}
	if obj.FitnessCache.Enabled == nil {
		obj.FitnessCache.Enabled = ptr.To(true)
	}
	if obj.FitnessCache.TTL == nil {
		obj.FitnessCache.TTL = &metav1.Duration{Duration: DefaultFitnessCacheTTL.Duration}
	}

	if obj.Report != nil && obj.Report.Format == "" {
		obj.Report.Format = ReportFormatYAML
	}
}
