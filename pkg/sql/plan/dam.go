// Copyright 2025 - 2026 CascadeDB
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package plan

import (
	"fmt"

	"github.com/cascadedb/cascade/pkg/common/cerr"
)

// DamBehavior describes how strongly the records of one input dam the output
// of the consuming exec node. Declaration order is the strength order, the
// deadlock breakup pass depends on it. Do not reorder.
type DamBehavior int32

const (
	// DamPipelined: some or all records of this input immediately trigger
	// output records of the node.
	DamPipelined DamBehavior = iota
	// DamEndInput: only the final record of this input triggers output
	// records of the node.
	DamEndInput
	// DamBlocking: no record of this input directly triggers output. The
	// node must consume the whole input first.
	DamBlocking
)

// StricterOrEqual reports whether d dams at least as strongly as o.
func (d DamBehavior) StricterOrEqual(o DamBehavior) bool {
	return d >= o
}

func (d DamBehavior) String() string {
	switch d {
	case DamPipelined:
		return "PIPELINED"
	case DamEndInput:
		return "END_INPUT"
	case DamBlocking:
		return "BLOCKING"
	}
	return fmt.Sprintf("INVALID(%d)", int32(d))
}

// ParseDamBehavior is the inverse of DamBehavior.String, used when decoding
// a compiled plan.
func ParseDamBehavior(s string) (DamBehavior, error) {
	switch s {
	case "PIPELINED":
		return DamPipelined, nil
	case "END_INPUT":
		return DamEndInput, nil
	case "BLOCKING":
		return DamBlocking, nil
	}
	return DamPipelined, cerr.NewInvalidInputNoCtx("unknown dam behavior %q", s)
}

func (d DamBehavior) MarshalText() ([]byte, error) {
	switch d {
	case DamPipelined, DamEndInput, DamBlocking:
		return []byte(d.String()), nil
	}
	return nil, cerr.NewInvalidArgNoCtx("dam behavior", int32(d))
}

func (d *DamBehavior) UnmarshalText(text []byte) error {
	v, err := ParseDamBehavior(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
