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
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// LoadQUBOSolverArgs reads args from a YAML or JSON file. Unknown fields are
// rejected. The result is not defaulted.
func LoadQUBOSolverArgs(path string) (*QUBOSolverArgs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading solver config: %w", err)
	}
	return DecodeQUBOSolverArgs(data)
}

// DecodeQUBOSolverArgs is LoadQUBOSolverArgs for in-memory documents.
func DecodeQUBOSolverArgs(data []byte) (*QUBOSolverArgs, error) {
	args := &QUBOSolverArgs{}
	if err := yaml.UnmarshalStrict(data, args); err != nil {
		return nil, fmt.Errorf("decoding solver config: %w", err)
	}
	return args, nil
}
