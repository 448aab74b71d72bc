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

package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cardano/cardanotx/hash"
	"github.com/go-cardano/cardanotx/value"
)

func mustPolicy(t *testing.T, seed byte) hash.Hash28 {
	t.Helper()
	var b [28]byte
	for i := range b {
		b[i] = seed
	}
	h, err := hash.NewHash28(b[:])
	require.NoError(t, err)
	return h
}

func TestValueAddSub(t *testing.T) {
	policy := mustPolicy(t, 0xAA)
	a := value.NewValue(10, value.MultiAsset{policy: value.Asset{"tok": 5}})
	b := value.NewValue(3, value.MultiAsset{policy: value.Asset{"tok": 2}})

	sum := a.Add(b)
	require.Equal(t, int64(13), sum.Coin)
	require.Equal(t, int64(7), sum.MultiAsset[policy]["tok"])

	diff, err := sum.Sub(b)
	require.NoError(t, err)
	require.Equal(t, a, diff)
}

func TestValueSubRejectsNegativeCoin(t *testing.T) {
	a := value.NewSimpleValue(1)
	b := value.NewSimpleValue(2)
	_, err := a.Sub(b)
	require.Error(t, err)
}

func TestValueSubRejectsNegativeAsset(t *testing.T) {
	policy := mustPolicy(t, 0xBB)
	a := value.NewValue(10, value.MultiAsset{policy: value.Asset{"tok": 1}})
	b := value.NewValue(0, value.MultiAsset{policy: value.Asset{"tok": 2}})
	_, err := a.Sub(b)
	require.Error(t, err)
}

func TestValuePruneZeroesOnSub(t *testing.T) {
	policy := mustPolicy(t, 0xCC)
	a := value.NewValue(5, value.MultiAsset{policy: value.Asset{"tok": 5}})
	b := value.NewValue(0, value.MultiAsset{policy: value.Asset{"tok": 5}})
	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.Nil(t, diff.MultiAsset)
}

func TestValueGreaterOrEqual(t *testing.T) {
	policy := mustPolicy(t, 0xDD)
	a := value.NewValue(10, value.MultiAsset{policy: value.Asset{"tok": 5}})
	b := value.NewValue(10, value.MultiAsset{policy: value.Asset{"tok": 5}})
	c := value.NewValue(10, value.MultiAsset{policy: value.Asset{"tok": 6}})
	require.True(t, a.GreaterOrEqual(b))
	require.False(t, a.GreaterOrEqual(c))
}

func TestValueCBORRoundTripADAOnly(t *testing.T) {
	v := value.NewSimpleValue(42)
	b, err := v.MarshalCBOR()
	require.NoError(t, err)

	var out value.Value
	require.NoError(t, out.UnmarshalCBOR(b))
	require.Equal(t, v, out)
}

func TestValueCBORRoundTripWithAssets(t *testing.T) {
	policy := mustPolicy(t, 0xEE)
	v := value.NewValue(42, value.MultiAsset{policy: value.Asset{"tok": 7}})
	b, err := v.MarshalCBOR()
	require.NoError(t, err)

	var out value.Value
	require.NoError(t, out.UnmarshalCBOR(b))
	require.Equal(t, v.Coin, out.Coin)
	require.Equal(t, v.MultiAsset[policy]["tok"], out.MultiAsset[policy]["tok"])
}
