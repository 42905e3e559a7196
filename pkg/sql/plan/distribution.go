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
	"strconv"
	"strings"

	"github.com/cascadedb/cascade/pkg/common/cerr"
	"golang.org/x/exp/slices"
)

// DistributionType describes how the records of one input edge are spread
// over the parallel instances of the consuming exec node.
type DistributionType int32

const (
	// DistributionAny accepts any data distribution.
	DistributionAny DistributionType = iota
	// DistributionHash partitions records by a hash of the key columns. A
	// given record appears on exactly one parallel instance.
	DistributionHash
	// DistributionBroadcast replicates every record to every parallel
	// instance.
	DistributionBroadcast
	// DistributionSingleton sends all records to a single instance. The
	// consuming node must run with parallelism 1.
	DistributionSingleton
	// DistributionUnknown is a placeholder for exec nodes whose input
	// requirement has not been analyzed yet.
	DistributionUnknown
)

func (t DistributionType) String() string {
	switch t {
	case DistributionAny:
		return "ANY"
	case DistributionHash:
		return "HASH"
	case DistributionBroadcast:
		return "BROADCAST"
	case DistributionSingleton:
		return "SINGLETON"
	case DistributionUnknown:
		return "UNKNOWN"
	}
	return fmt.Sprintf("INVALID(%d)", int32(t))
}

// ParseDistributionType is the inverse of DistributionType.String, used when
// decoding a compiled plan.
func ParseDistributionType(s string) (DistributionType, error) {
	switch s {
	case "ANY":
		return DistributionAny, nil
	case "HASH":
		return DistributionHash, nil
	case "BROADCAST":
		return DistributionBroadcast, nil
	case "SINGLETON":
		return DistributionSingleton, nil
	case "UNKNOWN":
		return DistributionUnknown, nil
	}
	return DistributionUnknown, cerr.NewInvalidInputNoCtx("unknown distribution type %q", s)
}

// RequiredDistribution is the data distribution an exec node requires for one
// of its inputs. The variant set is closed; compare values with
// DistributionEqual, not by identity.
type RequiredDistribution interface {
	Type() DistributionType
	String() string

	isRequiredDistribution()
}

// markerDistribution covers the variants that carry no payload.
type markerDistribution struct {
	typ DistributionType
}

func (d markerDistribution) Type() DistributionType {
	return d.typ
}

func (d markerDistribution) String() string {
	return d.typ.String()
}

func (markerDistribution) isRequiredDistribution() {}

var (
	// AnyDistribution requires nothing of the input.
	AnyDistribution RequiredDistribution = markerDistribution{DistributionAny}
	// BroadcastDistribution requires every instance to see every record.
	BroadcastDistribution RequiredDistribution = markerDistribution{DistributionBroadcast}
	// SingletonDistribution requires all records on one instance.
	SingletonDistribution RequiredDistribution = markerDistribution{DistributionSingleton}
	// UnknownDistribution is the non-constraining default for nodes that
	// have not been analyzed for a precise input requirement.
	UnknownDistribution RequiredDistribution = markerDistribution{DistributionUnknown}
)

// HashDistribution requires records to be partitioned by a hash over the
// listed key column positions. The key list is never empty.
type HashDistribution struct {
	keys []int32
}

// NewHashDistribution fails with ErrInvalidArg when keys is empty. The key
// slice is copied, later mutation of the argument has no effect.
func NewHashDistribution(keys []int32) (*HashDistribution, error) {
	if len(keys) == 0 {
		return nil, cerr.NewInvalidArgNoCtx("hash distribution keys", keys)
	}
	return &HashDistribution{keys: slices.Clone(keys)}, nil
}

func (d *HashDistribution) Type() DistributionType {
	return DistributionHash
}

// Keys returns the ordered hash key column positions, always non-empty.
func (d *HashDistribution) Keys() []int32 {
	return slices.Clone(d.keys)
}

func (d *HashDistribution) String() string {
	var buf strings.Builder
	buf.WriteString("HASH[")
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(strconv.FormatInt(int64(k), 10))
	}
	buf.WriteString("]")
	return buf.String()
}

func (*HashDistribution) isRequiredDistribution() {}

// DistributionEqual compares by variant type and payload. The stateless
// variants are shared singletons, but callers must not rely on that.
func DistributionEqual(a, b RequiredDistribution) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	if a.Type() != DistributionHash {
		return true
	}
	return slices.Equal(a.(*HashDistribution).keys, b.(*HashDistribution).keys)
}

// DistributionSatisfies reports whether an upstream producer that delivers
// the provided distribution already meets the required one, i.e. whether the
// alignment pass can skip inserting a repartition, broadcast or gather
// exchange on that edge.
func DistributionSatisfies(provided, required RequiredDistribution) bool {
	if required == nil {
		return true
	}
	switch required.Type() {
	case DistributionAny, DistributionUnknown:
		return true
	case DistributionHash:
		if provided == nil || provided.Type() != DistributionHash {
			return false
		}
		return slices.Equal(provided.(*HashDistribution).keys, required.(*HashDistribution).keys)
	case DistributionBroadcast:
		return provided != nil && provided.Type() == DistributionBroadcast
	case DistributionSingleton:
		return provided != nil && provided.Type() == DistributionSingleton
	}
	return false
}

type distributionJSON struct {
	Type string  `json:"type"`
	Keys []int32 `json:"keys,omitempty"`
}

func marshalDistribution(d RequiredDistribution) *distributionJSON {
	out := &distributionJSON{Type: d.Type().String()}
	if h, ok := d.(*HashDistribution); ok {
		out.Keys = h.Keys()
	}
	return out
}

func unmarshalDistribution(in *distributionJSON) (RequiredDistribution, error) {
	typ, err := ParseDistributionType(in.Type)
	if err != nil {
		return nil, err
	}
	switch typ {
	case DistributionAny:
		return AnyDistribution, nil
	case DistributionBroadcast:
		return BroadcastDistribution, nil
	case DistributionSingleton:
		return SingletonDistribution, nil
	case DistributionUnknown:
		return UnknownDistribution, nil
	case DistributionHash:
		return NewHashDistribution(in.Keys)
	}
	return nil, cerr.NewInternalErrorNoCtx("unreachable distribution type %d", typ)
}
