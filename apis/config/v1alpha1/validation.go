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
	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

var (
	supportedFallbackPolicies = sets.New(string(FallbackPopulationIndex), string(FallbackKeyIndex))
	supportedReportFormats    = sets.New(string(ReportFormatYAML), string(ReportFormatJSON))
)

// ValidateQUBOSolverArgs validates defaulted args and aggregates every problem found.
func ValidateQUBOSolverArgs(path *field.Path, args *QUBOSolverArgs) error {
	var allErrs field.ErrorList

	if args.APIVersion != SchemeGroupVersion {
		allErrs = append(allErrs, field.NotSupported(path.Child("apiVersion"), args.APIVersion, []string{SchemeGroupVersion}))
	}
	if args.Kind != Kind {
		allErrs = append(allErrs, field.NotSupported(path.Child("kind"), args.Kind, []string{Kind}))
	}

	if !supportedFallbackPolicies.Has(string(args.FallbackPolicy)) {
		allErrs = append(allErrs, field.NotSupported(path.Child("fallbackPolicy"), string(args.FallbackPolicy), sets.List(supportedFallbackPolicies)))
	}

	if c := args.FitnessCache; c != nil && c.TTL != nil && c.TTL.Duration < 0 {
		allErrs = append(allErrs, field.Invalid(path.Child("fitnessCache", "ttl"), c.TTL.Duration.String(), "must not be negative"))
	}

	if r := args.Report; r != nil {
		if !supportedReportFormats.Has(string(r.Format)) {
			allErrs = append(allErrs, field.NotSupported(path.Child("report", "format"), string(r.Format), sets.List(supportedReportFormats)))
		}
		if r.Path == "" {
			allErrs = append(allErrs, field.Required(path.Child("report", "path"), ""))
		}
	}

	return allErrs.ToAggregate()
}
