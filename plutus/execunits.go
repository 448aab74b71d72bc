// Copyright 2026 The cardanotx Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package plutus

import (
	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/cborx"
)

// ExecutionUnits is the `[mem, steps]` cost pair a redeemer is priced
// by. Unlike the source this module was ported from — whose
// ExecutionUnits.__add__ silently wraps on negative operands — Add
// rejects any negative operand rather than producing a wrapped or
// nonsensical total (spec §9 Open Question resolution).
type ExecutionUnits struct {
	Memory int64
	Steps  int64
}

// NewExecutionUnits constructs an ExecutionUnits pair.
func NewExecutionUnits(memory, steps int64) ExecutionUnits {
	return ExecutionUnits{Memory: memory, Steps: steps}
}

// IsZero reports whether both components are zero, the builder's
// signal that a redeemer's ex-units still need estimation.
func (e ExecutionUnits) IsZero() bool {
	return e.Memory == 0 && e.Steps == 0
}

// Add sums two ExecutionUnits, rejecting negative operands.
func (e ExecutionUnits) Add(o ExecutionUnits) (ExecutionUnits, error) {
	if e.Memory < 0 || e.Steps < 0 || o.Memory < 0 || o.Steps < 0 {
		return ExecutionUnits{}, apollerr.InvalidArgument("plutus: execution units: negative operand")
	}
	return ExecutionUnits{Memory: e.Memory + o.Memory, Steps: e.Steps + o.Steps}, nil
}

type wireExecutionUnits struct {
	_      struct{} `cbor:",toarray"`
	Memory int64
	Steps  int64
}

func (e ExecutionUnits) MarshalCBOR() ([]byte, error) {
	return cborx.Marshal(wireExecutionUnits{Memory: e.Memory, Steps: e.Steps})
}

func (e *ExecutionUnits) UnmarshalCBOR(data []byte) error {
	var w wireExecutionUnits
	if err := cborx.Unmarshal(data, &w); err != nil {
		return err
	}
	*e = ExecutionUnits{Memory: w.Memory, Steps: w.Steps}
	return nil
}
