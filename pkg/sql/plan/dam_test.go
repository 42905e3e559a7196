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

func TestDamBehaviorOrder(t *testing.T) {
	// the deadlock breakup pass depends on this exact order
	require.True(t, DamPipelined < DamEndInput)
	require.True(t, DamEndInput < DamBlocking)

	all := []DamBehavior{DamPipelined, DamEndInput, DamBlocking}
	for _, a := range all {
		for _, b := range all {
			require.Equal(t, a >= b, a.StricterOrEqual(b),
				"StricterOrEqual(%s, %s)", a, b)
		}
	}
}

func TestDamBehaviorString(t *testing.T) {
	require.Equal(t, "PIPELINED", DamPipelined.String())
	require.Equal(t, "END_INPUT", DamEndInput.String())
	require.Equal(t, "BLOCKING", DamBlocking.String())
}

func TestParseDamBehavior(t *testing.T) {
	for _, d := range []DamBehavior{DamPipelined, DamEndInput, DamBlocking} {
		got, err := ParseDamBehavior(d.String())
		require.NoError(t, err)
		require.Equal(t, d, got)
	}
	_, err := ParseDamBehavior("FULL_DAM")
	require.True(t, cerr.IsErrCode(err, cerr.ErrInvalidInput))
}

func TestDamBehaviorText(t *testing.T) {
	text, err := DamBlocking.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "BLOCKING", string(text))

	var d DamBehavior
	require.NoError(t, d.UnmarshalText([]byte("END_INPUT")))
	require.Equal(t, DamEndInput, d)
	require.Error(t, d.UnmarshalText([]byte("pipelined")))

	_, err = DamBehavior(42).MarshalText()
	require.True(t, cerr.IsErrCode(err, cerr.ErrInvalidArg))
}
