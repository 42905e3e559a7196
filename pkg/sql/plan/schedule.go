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

import "sort"

// InputReadOrder returns the indices of a node's inputs in the order the
// multi-input scheduler should open them: ascending priority, lower integer
// first. Inputs with equal priority keep their declaration order; the
// scheduler is free to read those concurrently.
func InputReadOrder(props []*InputProperty) []int {
	order := make([]int, len(props))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return props[order[i]].Priority() < props[order[j]].Priority()
	})
	return order
}

// StrictestDam returns the strictest dam behavior among a node's inputs,
// DamPipelined when there are none. The deadlock breakup pass uses this to
// decide whether any edge into the node can stall a pipelined cycle.
func StrictestDam(props []*InputProperty) DamBehavior {
	strictest := DamPipelined
	for _, p := range props {
		if p.DamBehavior().StricterOrEqual(strictest) {
			strictest = p.DamBehavior()
		}
	}
	return strictest
}
