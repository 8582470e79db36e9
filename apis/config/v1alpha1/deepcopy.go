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
	v1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// DeepCopyInto copies the receiver, writing into out. in must be non-nil.
func (in *FitnessCacheArgs) DeepCopyInto(out *FitnessCacheArgs) {
	*out = *in
	if in.Enabled != nil {
		in, out := &in.Enabled, &out.Enabled
		*out = new(bool)
		**out = **in
	}
	if in.TTL != nil {
		in, out := &in.TTL, &out.TTL
		*out = new(v1.Duration)
		**out = **in
	}
	return
}

// DeepCopy copies the receiver, creating a new FitnessCacheArgs.
func (in *FitnessCacheArgs) DeepCopy() *FitnessCacheArgs {
	if in == nil {
		return nil
	}
	out := new(FitnessCacheArgs)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver, writing into out. in must be non-nil.
func (in *QUBOSolverArgs) DeepCopyInto(out *QUBOSolverArgs) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	if in.Seed != nil {
		in, out := &in.Seed, &out.Seed
		*out = new(uint64)
		**out = **in
	}
	if in.FitnessCache != nil {
		in, out := &in.FitnessCache, &out.FitnessCache
		*out = new(FitnessCacheArgs)
		(*in).DeepCopyInto(*out)
	}
	if in.Report != nil {
		in, out := &in.Report, &out.Report
		*out = new(ReportArgs)
		**out = **in
	}
	return
}

// DeepCopy copies the receiver, creating a new QUBOSolverArgs.
func (in *QUBOSolverArgs) DeepCopy() *QUBOSolverArgs {
	if in == nil {
		return nil
	}
	out := new(QUBOSolverArgs)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver, writing into out. in must be non-nil.
func (in *ReportArgs) DeepCopyInto(out *ReportArgs) {
	*out = *in
	return
}

// DeepCopy copies the receiver, creating a new ReportArgs.
func (in *ReportArgs) DeepCopy() *ReportArgs {
	if in == nil {
		return nil
	}
	out := new(ReportArgs)
	in.DeepCopyInto(out)
	return out
}
