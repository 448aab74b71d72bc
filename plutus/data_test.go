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

package plutus_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cardano/cardanotx/plutus"
)

func TestDataRoundTripInteger(t *testing.T) {
	d := plutus.NewInteger(big.NewInt(123456789))
	b, err := d.MarshalCBOR()
	require.NoError(t, err)

	var out plutus.Data
	require.NoError(t, out.UnmarshalCBOR(b))
	require.Equal(t, 0, d.Int.Cmp(out.Int))
}

func TestDataRoundTripByteStringShort(t *testing.T) {
	d := plutus.NewByteString([]byte("hello"))
	b, err := d.MarshalCBOR()
	require.NoError(t, err)

	var out plutus.Data
	require.NoError(t, out.UnmarshalCBOR(b))
	require.True(t, bytes.Equal(d.Bytes, out.Bytes))
}

func TestDataRoundTripByteStringChunked(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB}, 200)
	d := plutus.NewByteString(payload)
	b, err := d.MarshalCBOR()
	require.NoError(t, err)
	require.Equal(t, byte(0x5f), b[0])

	var out plutus.Data
	require.NoError(t, out.UnmarshalCBOR(b))
	require.True(t, bytes.Equal(payload, out.Bytes))
}

func TestDataRoundTripList(t *testing.T) {
	d := plutus.NewList(
		plutus.NewInteger(big.NewInt(1)),
		plutus.NewInteger(big.NewInt(2)),
		plutus.NewByteString([]byte("x")),
	)
	b, err := d.MarshalCBOR()
	require.NoError(t, err)

	var out plutus.Data
	require.NoError(t, out.UnmarshalCBOR(b))
	require.Len(t, out.Fields, 3)
	require.Equal(t, 0, out.Fields[0].Int.Cmp(big.NewInt(1)))
}

func TestDataRoundTripConstrCompact(t *testing.T) {
	d := plutus.NewConstr(0,
		plutus.NewByteString([]byte{0x01, 0x02}),
		plutus.NewInteger(big.NewInt(7)),
	)
	b, err := d.MarshalCBOR()
	require.NoError(t, err)

	var out plutus.Data
	require.NoError(t, out.UnmarshalCBOR(b))
	require.Equal(t, uint64(0), out.ConstrTag)
	require.Len(t, out.Fields, 2)
}

func TestDataRoundTripConstrWide(t *testing.T) {
	d := plutus.NewConstr(10, plutus.NewInteger(big.NewInt(1)))
	b, err := d.MarshalCBOR()
	require.NoError(t, err)

	var out plutus.Data
	require.NoError(t, out.UnmarshalCBOR(b))
	require.Equal(t, uint64(10), out.ConstrTag)
}

func TestDataRoundTripConstrGeneric(t *testing.T) {
	d := plutus.NewConstr(500, plutus.NewInteger(big.NewInt(1)))
	b, err := d.MarshalCBOR()
	require.NoError(t, err)

	var out plutus.Data
	require.NoError(t, out.UnmarshalCBOR(b))
	require.Equal(t, uint64(500), out.ConstrTag)
	require.Len(t, out.Fields, 1)
}

func TestDataRoundTripMapPreservesOrder(t *testing.T) {
	d := plutus.NewMap(
		plutus.Pair{Key: plutus.NewInteger(big.NewInt(2)), Value: plutus.NewInteger(big.NewInt(20))},
		plutus.Pair{Key: plutus.NewInteger(big.NewInt(1)), Value: plutus.NewInteger(big.NewInt(10))},
	)
	b, err := d.MarshalCBOR()
	require.NoError(t, err)

	var out plutus.Data
	require.NoError(t, out.UnmarshalCBOR(b))
	require.Len(t, out.Pairs, 2)
	require.Equal(t, 0, out.Pairs[0].Key.Int.Cmp(big.NewInt(2)))
	require.Equal(t, 0, out.Pairs[1].Key.Int.Cmp(big.NewInt(1)))
}

func TestDataHashIsDeterministic(t *testing.T) {
	d := plutus.NewConstr(0, plutus.NewInteger(big.NewInt(42)))
	h1, err := d.Hash()
	require.NoError(t, err)
	h2, err := d.Hash()
	require.NoError(t, err)
	require.Equal(t, h1, h2)
}

func TestRawDataPassthrough(t *testing.T) {
	original := []byte{0xd8, 0x79, 0x9f, 0x01, 0xff}
	var r plutus.RawData
	require.NoError(t, r.UnmarshalCBOR(original))
	b, err := r.MarshalCBOR()
	require.NoError(t, err)
	require.True(t, bytes.Equal(original, b))
}
