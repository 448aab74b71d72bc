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

package tx_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cardano/cardanotx/plutus"
	"github.com/go-cardano/cardanotx/tx"
	"github.com/go-cardano/cardanotx/value"
)

type escrowDatum struct {
	Beneficiary []byte
	Deadline    *big.Int
}

func TestInlineDatumFromStructBuildsConstr(t *testing.T) {
	d, err := tx.InlineDatumFromStruct(escrowDatum{Beneficiary: []byte{0x01}, Deadline: big.NewInt(1000)})
	require.NoError(t, err)
	require.Equal(t, tx.DatumInline, d.Kind)
	require.Equal(t, plutus.KindConstr, d.Inline.Kind)
	require.Len(t, d.Inline.Fields, 2)
}

func TestOutputWithStructDatumRoundTrips(t *testing.T) {
	datum, err := tx.InlineDatumFromStruct(escrowDatum{Beneficiary: []byte{0x02}, Deadline: big.NewInt(42)})
	require.NoError(t, err)

	out := tx.NewPostAlonzoOutput(mustTestAddr(t), value.NewSimpleValue(2_000_000), datum, nil)
	raw, err := out.MarshalCBOR()
	require.NoError(t, err)

	var decoded tx.Output
	require.NoError(t, decoded.UnmarshalCBOR(raw))
	require.Equal(t, tx.DatumInline, decoded.Datum.Kind)

	var got escrowDatum
	require.NoError(t, plutus.FromData(decoded.Datum.Inline, &got))
	require.Equal(t, 0, big.NewInt(42).Cmp(got.Deadline))
}
