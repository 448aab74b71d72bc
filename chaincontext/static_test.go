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

package chaincontext_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cardano/cardanotx/address"
	"github.com/go-cardano/cardanotx/chaincontext"
	"github.com/go-cardano/cardanotx/hash"
	"github.com/go-cardano/cardanotx/protocol"
	"github.com/go-cardano/cardanotx/tx"
	"github.com/go-cardano/cardanotx/value"
)

func testAddr(t *testing.T) address.Address {
	t.Helper()
	var b [28]byte
	b[0] = 0x07
	h, err := hash.NewHash28(b[:])
	require.NoError(t, err)
	cred := address.KeyCredential(h)
	a, err := address.NewShelleyAddress(address.Testnet, &cred, address.NoStaking())
	require.NoError(t, err)
	return address.FromShelley(a)
}

func TestStaticUTxOsByAddress(t *testing.T) {
	ctx := chaincontext.NewStatic(protocol.Mainnet(), protocol.GenesisParameters{}, address.Testnet)
	addr := testAddr(t)

	var txID [32]byte
	txID[0] = 0x09
	u := tx.NewUTxO(tx.NewInput(hash.TransactionId(txID), 0), tx.NewOutput(addr, value.NewSimpleValue(1_000_000)))
	ctx.AddUTxO(addr, u)

	got, err := ctx.UTxOs(addr)
	require.NoError(t, err)
	require.Equal(t, []tx.UTxO{u}, got)
}

func TestStaticSubmitTxRecordsPayloadAndHashes(t *testing.T) {
	ctx := chaincontext.NewStatic(protocol.Mainnet(), protocol.GenesisParameters{}, address.Testnet)
	raw := []byte{0xde, 0xad, 0xbe, 0xef}
	id, err := ctx.SubmitTx(raw)
	require.NoError(t, err)
	require.Len(t, ctx.Submitted, 1)
	require.Equal(t, raw, ctx.Submitted[0])
	require.NotEqual(t, hash.TransactionId{}, id)
}

func TestStaticEvaluateTxRequiresConfiguredResult(t *testing.T) {
	ctx := chaincontext.NewStatic(protocol.Mainnet(), protocol.GenesisParameters{}, address.Testnet)
	_, err := ctx.EvaluateTx([]byte{0x01})
	require.Error(t, err)
}

func TestStaticUTxOsCallbackOverridesMap(t *testing.T) {
	ctx := chaincontext.NewStatic(protocol.Mainnet(), protocol.GenesisParameters{}, address.Testnet)
	called := false
	ctx.UTxOsCallback = func(addr address.Address) ([]tx.UTxO, error) {
		called = true
		return nil, nil
	}
	_, err := ctx.UTxOs(testAddr(t))
	require.NoError(t, err)
	require.True(t, called)
}
