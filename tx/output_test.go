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
	"testing"

	"github.com/stretchr/testify/require"

	"math/big"

	"github.com/go-cardano/cardanotx/address"
	"github.com/go-cardano/cardanotx/hash"
	"github.com/go-cardano/cardanotx/plutus"
	"github.com/go-cardano/cardanotx/tx"
	"github.com/go-cardano/cardanotx/value"
)

func mustTestAddr(t *testing.T) address.Address {
	t.Helper()
	var b [28]byte
	b[0] = 0x42
	h, err := hash.NewHash28(b[:])
	require.NoError(t, err)
	cred := address.KeyCredential(h)
	a, err := address.NewShelleyAddress(address.Testnet, &cred, address.NoStaking())
	require.NoError(t, err)
	return address.FromShelley(a)
}

func TestOutputLegacyRoundTrip(t *testing.T) {
	out := tx.NewOutput(mustTestAddr(t), value.NewSimpleValue(1_500_000))
	raw, err := out.MarshalCBOR()
	require.NoError(t, err)

	var decoded tx.Output
	require.NoError(t, decoded.UnmarshalCBOR(raw))
	require.Equal(t, out.Amount.Coin, decoded.Amount.Coin)
	require.False(t, decoded.PostAlonzo)
}

func TestOutputPostAlonzoRoundTripWithInlineDatum(t *testing.T) {
	datum := tx.InlineDatum(plutus.NewInteger(big.NewInt(42)))
	out := tx.NewPostAlonzoOutput(mustTestAddr(t), value.NewSimpleValue(2_000_000), datum, nil)
	raw, err := out.MarshalCBOR()
	require.NoError(t, err)

	var decoded tx.Output
	require.NoError(t, decoded.UnmarshalCBOR(raw))
	require.True(t, decoded.PostAlonzo)
	require.Equal(t, tx.DatumInline, decoded.Datum.Kind)
}

func TestInputLess(t *testing.T) {
	var idA, idB [32]byte
	idA[0] = 0x01
	idB[0] = 0x02
	a := tx.NewInput(hash.TransactionId(idA), 0)
	b := tx.NewInput(hash.TransactionId(idB), 0)
	require.True(t, a.Less(b))
	require.False(t, b.Less(a))
}
