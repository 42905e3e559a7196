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
	"encoding/json"
	"fmt"

	"go.uber.org/zap/zapcore"
)

// InputProperty describes one input edge of an exec node: the data
// distribution the node requires on that edge, how strongly the edge dams
// the node's output, and the read priority among the node's inputs.
//
// An InputProperty is immutable once built. It is attached to an edge during
// plan construction and read by the deadlock breakup, multi-input scheduling
// and distribution alignment passes, concurrently and without coordination.
type InputProperty struct {
	requiredDistribution RequiredDistribution
	damBehavior          DamBehavior
	priority             int32
}

// DefaultProperty is used for edges of exec nodes that have not been
// analyzed for precise input requirements: unknown distribution, pipelined,
// priority 0.
var DefaultProperty = NewInputPropertyBuilder().Build()

// RequiredDistribution is never nil.
func (p *InputProperty) RequiredDistribution() RequiredDistribution {
	return p.requiredDistribution
}

func (p *InputProperty) DamBehavior() DamBehavior {
	return p.damBehavior
}

// Priority of this input when the node is read. The smaller the integer, the
// higher the priority. Equal integers mean equal priority.
func (p *InputProperty) Priority() int32 {
	return p.priority
}

func (p *InputProperty) Equal(o *InputProperty) bool {
	if p == nil || o == nil {
		return p == nil && o == nil
	}
	return DistributionEqual(p.requiredDistribution, o.requiredDistribution) &&
		p.damBehavior == o.damBehavior &&
		p.priority == o.priority
}

func (p *InputProperty) String() string {
	return fmt.Sprintf("InputProperty{requiredDistribution=%s, damBehavior=%s, priority=%d}",
		p.requiredDistribution, p.damBehavior, p.priority)
}

// MarshalLogObject lets optimizer passes log properties as structured zap
// fields.
func (p *InputProperty) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("requiredDistribution", p.requiredDistribution.String())
	enc.AddString("damBehavior", p.damBehavior.String())
	enc.AddInt32("priority", p.priority)
	return nil
}

type inputPropertyJSON struct {
	RequiredDistribution *distributionJSON `json:"requiredDistribution,omitempty"`
	DamBehavior          string            `json:"damBehavior,omitempty"`
	Priority             int32             `json:"priority"`
}

// MarshalJSON encodes the property in the compiled-plan form, e.g.
// {"requiredDistribution":{"type":"HASH","keys":[1,3]},"damBehavior":"BLOCKING","priority":1}.
func (p *InputProperty) MarshalJSON() ([]byte, error) {
	return json.Marshal(&inputPropertyJSON{
		RequiredDistribution: marshalDistribution(p.requiredDistribution),
		DamBehavior:          p.damBehavior.String(),
		Priority:             p.priority,
	})
}

// UnmarshalJSON decodes the compiled-plan form. Absent fields fall back to
// the defaults of a fresh builder.
func (p *InputProperty) UnmarshalJSON(data []byte) error {
	var in inputPropertyJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	b := NewInputPropertyBuilder().Priority(in.Priority)
	if in.RequiredDistribution != nil {
		d, err := unmarshalDistribution(in.RequiredDistribution)
		if err != nil {
			return err
		}
		b.RequiredDistribution(d)
	}
	if in.DamBehavior != "" {
		d, err := ParseDamBehavior(in.DamBehavior)
		if err != nil {
			return err
		}
		b.DamBehavior(d)
	}
	*p = *b.Build()
	return nil
}

// InputPropertyBuilder assembles an InputProperty during plan-node
// construction. Not safe for concurrent use, confine it to one owner until
// Build.
type InputPropertyBuilder struct {
	requiredDistribution RequiredDistribution
	damBehavior          DamBehavior
	priority             int32
}

// NewInputPropertyBuilder seeds the builder with unknown distribution,
// pipelined dam behavior and priority 0.
func NewInputPropertyBuilder() *InputPropertyBuilder {
	return &InputPropertyBuilder{
		requiredDistribution: UnknownDistribution,
		damBehavior:          DamPipelined,
	}
}

// RequiredDistribution overwrites any previously set distribution.
func (b *InputPropertyBuilder) RequiredDistribution(d RequiredDistribution) *InputPropertyBuilder {
	b.requiredDistribution = d
	return b
}

// DamBehavior overwrites any previously set dam behavior.
func (b *InputPropertyBuilder) DamBehavior(d DamBehavior) *InputPropertyBuilder {
	b.damBehavior = d
	return b
}

// Priority overwrites any previously set priority.
func (b *InputPropertyBuilder) Priority(p int32) *InputPropertyBuilder {
	b.priority = p
	return b
}

// Build returns an independent snapshot. Mutating the builder afterwards
// does not affect properties built earlier.
func (b *InputPropertyBuilder) Build() *InputProperty {
	return &InputProperty{
		requiredDistribution: b.requiredDistribution,
		damBehavior:          b.damBehavior,
		priority:             b.priority,
	}
}
