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
	"math/big"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cardano/cardanotx/plutus"
)

type testDatum struct {
	Owner  []byte
	Amount *big.Int
	Memo   string
}

type fixedIDDatum struct {
	N *big.Int
}

func (fixedIDDatum) ConstrID() uint64 { return 5 }

func TestDeriveConstrIDIsDeterministicAndTypeScoped(t *testing.T) {
	a := plutus.DeriveConstrID(reflect.TypeOf(testDatum{}))
	b := plutus.DeriveConstrID(reflect.TypeOf(testDatum{}))
	require.Equal(t, a, b)

	other := plutus.DeriveConstrID(reflect.TypeOf(fixedIDDatum{}))
	require.NotEqual(t, a, other)
}

func TestToDataDerivesConstrTagFromType(t *testing.T) {
	d, err := plutus.ToData(testDatum{Owner: []byte{0x01, 0x02}, Amount: big.NewInt(42), Memo: "hi"})
	require.NoError(t, err)
	require.Equal(t, plutus.KindConstr, d.Kind)
	require.Equal(t, plutus.DeriveConstrID(reflect.TypeOf(testDatum{})), d.ConstrTag)
	require.Len(t, d.Fields, 3)
}

func TestToDataHonorsConstrIDer(t *testing.T) {
	d, err := plutus.ToData(fixedIDDatum{N: big.NewInt(1)})
	require.NoError(t, err)
	require.Equal(t, uint64(5), d.ConstrTag)
}

func TestToDataFromDataRoundTrip(t *testing.T) {
	in := testDatum{Owner: []byte{0xde, 0xad}, Amount: big.NewInt(7), Memo: "m"}
	d, err := plutus.ToData(in)
	require.NoError(t, err)

	raw, err := d.MarshalCBOR()
	require.NoError(t, err)

	var decoded plutus.Data
	require.NoError(t, decoded.UnmarshalCBOR(raw))

	var out testDatum
	require.NoError(t, plutus.FromData(decoded, &out))
	require.Equal(t, in.Owner, out.Owner)
	require.Equal(t, 0, in.Amount.Cmp(out.Amount))
	require.Equal(t, in.Memo, out.Memo)
}

func TestFromDataRejectsConstrIDerMismatch(t *testing.T) {
	d := plutus.NewConstr(99, plutus.NewInteger(big.NewInt(1)))
	var out fixedIDDatum
	require.Error(t, plutus.FromData(d, &out))
}

func TestDataJSONRoundTripConstr(t *testing.T) {
	d := plutus.NewConstr(0,
		plutus.NewInteger(big.NewInt(123)),
		plutus.NewByteString([]byte{0xAB, 0xCD}),
		plutus.NewList(plutus.NewInteger(big.NewInt(1)), plutus.NewInteger(big.NewInt(2))),
	)
	b, err := d.MarshalJSON()
	require.NoError(t, err)

	var out plutus.Data
	require.NoError(t, out.UnmarshalJSON(b))
	require.Equal(t, d.Kind, out.Kind)
	require.Equal(t, d.ConstrTag, out.ConstrTag)
	require.Len(t, out.Fields, 3)
	require.Equal(t, 0, d.Fields[0].Int.Cmp(out.Fields[0].Int))
}

func TestDataJSONMapShape(t *testing.T) {
	d := plutus.NewMap(plutus.Pair{
		Key:   plutus.NewInteger(big.NewInt(1)),
		Value: plutus.NewByteString([]byte("v")),
	})
	b, err := d.MarshalJSON()
	require.NoError(t, err)
	require.Contains(t, string(b), `"map"`)

	var out plutus.Data
	require.NoError(t, out.UnmarshalJSON(b))
	require.Len(t, out.Pairs, 1)
	require.Equal(t, 0, d.Pairs[0].Key.Int.Cmp(out.Pairs[0].Key.Int))
}
