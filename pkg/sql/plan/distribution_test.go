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
	"testing"

	"github.com/cascadedb/cascade/pkg/common/cerr"
	"github.com/stretchr/testify/require"
)

func TestHashDistributionRoundTrip(t *testing.T) {
	keysList := [][]int32{
		{0},
		{1, 3},
		{5, 2, 2, 0},
	}
	for _, keys := range keysList {
		d, err := NewHashDistribution(keys)
		require.NoError(t, err)
		require.Equal(t, DistributionHash, d.Type())
		require.Equal(t, keys, d.Keys())
	}
}

func TestHashDistributionEmptyKeys(t *testing.T) {
	_, err := NewHashDistribution(nil)
	require.Error(t, err)
	require.True(t, cerr.IsErrCode(err, cerr.ErrInvalidArg))

	_, err = NewHashDistribution([]int32{})
	require.True(t, cerr.IsErrCode(err, cerr.ErrInvalidArg))
}

func TestHashDistributionImmutable(t *testing.T) {
	keys := []int32{1, 3}
	d, err := NewHashDistribution(keys)
	require.NoError(t, err)

	// mutating the input or the returned slice must not leak into d
	keys[0] = 9
	got := d.Keys()
	got[1] = 9
	require.Equal(t, []int32{1, 3}, d.Keys())
}

func TestDistributionString(t *testing.T) {
	require.Equal(t, "ANY", AnyDistribution.String())
	require.Equal(t, "BROADCAST", BroadcastDistribution.String())
	require.Equal(t, "SINGLETON", SingletonDistribution.String())
	require.Equal(t, "UNKNOWN", UnknownDistribution.String())

	d, err := NewHashDistribution([]int32{1, 3})
	require.NoError(t, err)
	require.Equal(t, "HASH[1, 3]", d.String())
}

func TestParseDistributionType(t *testing.T) {
	for _, typ := range []DistributionType{
		DistributionAny,
		DistributionHash,
		DistributionBroadcast,
		DistributionSingleton,
		DistributionUnknown,
	} {
		got, err := ParseDistributionType(typ.String())
		require.NoError(t, err)
		require.Equal(t, typ, got)
	}
	_, err := ParseDistributionType("RANGE")
	require.True(t, cerr.IsErrCode(err, cerr.ErrInvalidInput))
}

func TestDistributionEqual(t *testing.T) {
	h13a, err := NewHashDistribution([]int32{1, 3})
	require.NoError(t, err)
	h13b, err := NewHashDistribution([]int32{1, 3})
	require.NoError(t, err)
	h31, err := NewHashDistribution([]int32{3, 1})
	require.NoError(t, err)

	// by type and payload, not identity
	require.True(t, DistributionEqual(h13a, h13b))
	require.False(t, DistributionEqual(h13a, h31))
	require.True(t, DistributionEqual(AnyDistribution, markerDistribution{DistributionAny}))
	require.False(t, DistributionEqual(AnyDistribution, BroadcastDistribution))
	require.False(t, DistributionEqual(h13a, AnyDistribution))
	require.True(t, DistributionEqual(nil, nil))
	require.False(t, DistributionEqual(nil, AnyDistribution))
}

func TestDistributionSatisfies(t *testing.T) {
	h13, err := NewHashDistribution([]int32{1, 3})
	require.NoError(t, err)
	h13b, err := NewHashDistribution([]int32{1, 3})
	require.NoError(t, err)
	h31, err := NewHashDistribution([]int32{3, 1})
	require.NoError(t, err)

	// non-constraining requirements accept anything
	for _, provided := range []RequiredDistribution{
		nil, AnyDistribution, h13, BroadcastDistribution, SingletonDistribution,
	} {
		require.True(t, DistributionSatisfies(provided, AnyDistribution))
		require.True(t, DistributionSatisfies(provided, UnknownDistribution))
	}

	// hash requires the exact ordered key set
	require.True(t, DistributionSatisfies(h13b, h13))
	require.False(t, DistributionSatisfies(h31, h13))
	require.False(t, DistributionSatisfies(BroadcastDistribution, h13))
	require.False(t, DistributionSatisfies(nil, h13))

	require.True(t, DistributionSatisfies(BroadcastDistribution, BroadcastDistribution))
	require.False(t, DistributionSatisfies(h13, BroadcastDistribution))
	require.True(t, DistributionSatisfies(SingletonDistribution, SingletonDistribution))
	require.False(t, DistributionSatisfies(AnyDistribution, SingletonDistribution))
}
