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

package txbuilder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cardano/cardanotx/address"
	"github.com/go-cardano/cardanotx/chaincontext"
	"github.com/go-cardano/cardanotx/hash"
	"github.com/go-cardano/cardanotx/key"
	"github.com/go-cardano/cardanotx/protocol"
	"github.com/go-cardano/cardanotx/tx"
	"github.com/go-cardano/cardanotx/txbuilder"
	"github.com/go-cardano/cardanotx/value"
)

func senderKeyAndAddress(t *testing.T) (key.SigningKey, address.Address) {
	t.Helper()
	seed := make([]byte, 32)
	seed[0] = 0x01
	sk, err := key.NewSigningKey(seed)
	require.NoError(t, err)
	vk, err := sk.VerificationKey()
	require.NoError(t, err)
	pkh, err := vk.Hash()
	require.NoError(t, err)
	cred := address.KeyCredential(hash.Hash28(pkh))
	a, err := address.NewShelleyAddress(address.Mainnet, &cred, address.NoStaking())
	require.NoError(t, err)
	return sk, address.FromShelley(a)
}

func inputUTxO(addr address.Address, idx byte, coin int64, assets value.MultiAsset) tx.UTxO {
	var txIDBytes [32]byte
	txIDBytes[0] = 0x31 + idx
	in := tx.NewInput(hash.TransactionId(txIDBytes), 0)
	out := tx.NewOutput(addr, value.NewValue(coin, assets))
	return tx.NewUTxO(in, out)
}

func newStaticContext(t *testing.T) *chaincontext.Static {
	t.Helper()
	return chaincontext.NewStatic(protocol.Mainnet(), protocol.GenesisParameters{}, address.Mainnet)
}

// TestScenarioS1SimpleADASend reproduces spec.md §8.3 scenario S1: one
// sender UTxO funds one payment output, and the builder must select the
// input, compute a fee, and return the remainder as change — with the
// whole transaction's value conserved (inputs = outputs + fee).
func TestScenarioS1SimpleADASend(t *testing.T) {
	sk, sender := senderKeyAndAddress(t)
	u := inputUTxO(sender, 0, 5_000_000, nil)

	ctx := newStaticContext(t)
	ctx.AddUTxO(sender, u)

	b, err := txbuilder.New(ctx)
	require.NoError(t, err)
	b.AddInputAddress(sender)
	require.NoError(t, b.AddOutput(tx.NewOutput(sender, value.NewSimpleValue(500_000))))

	signed, err := b.BuildAndSign(sender, true, nil, []key.SigningKey{sk})
	require.NoError(t, err)

	require.Len(t, signed.Body.Inputs, 1)
	require.Equal(t, u.Input, signed.Body.Inputs[0])
	require.Greater(t, signed.Body.Fee, int64(0))
	require.Len(t, signed.WitnessSet.VKeyWitnesses, 1)

	totalOut := signed.Body.Fee
	for _, o := range signed.Body.Outputs {
		totalOut += o.Amount.Coin
	}
	require.Equal(t, int64(5_000_000), totalOut)

	// Merged change: exactly one output (merged into the payment
	// output's address), not a separate change output.
	require.Len(t, signed.Body.Outputs, 1)

	txID, err := signed.ID()
	require.NoError(t, err)
	sig := signed.WitnessSet.VKeyWitnesses[0].Signature
	vk := signed.WitnessSet.VKeyWitnesses[0].VKey
	require.True(t, vk.Verify(txID.Bytes(), sig))
}

// TestScenarioS2MultiAssetSend reproduces spec.md §8.3 scenario S2: two
// multi-asset-bearing outputs force selection of both available UTxOs,
// and the leftover native-asset balance must reappear in the change.
func TestScenarioS2MultiAssetSend(t *testing.T) {
	sk, sender := senderKeyAndAddress(t)

	var policy hash.Hash28
	policy[0] = 0xAA
	token1 := value.MultiAsset{policy: value.Asset{"Token1": 5}}
	token2 := value.MultiAsset{policy: value.Asset{"Token2": 3}}

	u1 := inputUTxO(sender, 0, 6_000_000, token1)
	u2 := inputUTxO(sender, 1, 5_000_000, token2)

	ctx := newStaticContext(t)
	ctx.AddUTxO(sender, u1)
	ctx.AddUTxO(sender, u2)

	b, err := txbuilder.New(ctx)
	require.NoError(t, err)
	b.AddInputAddress(sender)
	require.NoError(t, b.AddOutput(tx.NewOutput(sender, value.NewSimpleValue(3_000_000))))
	require.NoError(t, b.AddOutput(tx.NewOutput(
		sender,
		value.NewValue(2_000_000, value.MultiAsset{policy: value.Asset{"Token1": 1}}),
	)))

	signed, err := b.BuildAndSign(sender, false, nil, []key.SigningKey{sk})
	require.NoError(t, err)

	require.Len(t, signed.Body.Inputs, 2)

	totalInCoin := u1.Output.Amount.Coin + u2.Output.Amount.Coin
	totalOutCoin := signed.Body.Fee
	for _, o := range signed.Body.Outputs {
		totalOutCoin += o.Amount.Coin
	}
	require.Equal(t, totalInCoin, totalOutCoin)

	// The change output must carry the leftover 4 Token1 + 3 Token2.
	var changeOut *tx.Output
	for i, o := range signed.Body.Outputs {
		if len(o.Amount.MultiAsset) > 0 && o.Amount.AssetNames(policy) != nil {
			names := o.Amount.AssetNames(policy)
			if len(names) == 2 {
				changeOut = &signed.Body.Outputs[i]
			}
		}
	}
	require.NotNil(t, changeOut, "expected a change output carrying both leftover assets")
	require.Equal(t, int64(4), changeOut.Amount.MultiAsset[policy]["Token1"])
	require.Equal(t, int64(3), changeOut.Amount.MultiAsset[policy]["Token2"])
}

// TestEstimateFeeMatchesBuild checks that EstimateFee's preview agrees
// with the fee Build actually settles on for the same inputs/outputs.
func TestEstimateFeeMatchesBuild(t *testing.T) {
	_, sender := senderKeyAndAddress(t)
	u := inputUTxO(sender, 0, 5_000_000, nil)

	ctx := newStaticContext(t)
	ctx.AddUTxO(sender, u)

	b, err := txbuilder.New(ctx)
	require.NoError(t, err)
	b.AddInputAddress(sender)
	require.NoError(t, b.AddOutput(tx.NewOutput(sender, value.NewSimpleValue(500_000))))

	estimated, err := b.EstimateFee(sender, true)
	require.NoError(t, err)

	built, err := b.Build(sender, true, nil)
	require.NoError(t, err)

	require.Equal(t, estimated, built.Body.Fee)
}

// TestBuildFailsWhenUTxOsInsufficient checks the builder surfaces a
// coin-selection error rather than producing an unbalanced transaction.
func TestBuildFailsWhenUTxOsInsufficient(t *testing.T) {
	_, sender := senderKeyAndAddress(t)
	u := inputUTxO(sender, 0, 400_000, nil)

	ctx := newStaticContext(t)
	ctx.AddUTxO(sender, u)

	b, err := txbuilder.New(ctx)
	require.NoError(t, err)
	b.AddInputAddress(sender)
	require.NoError(t, b.AddOutput(tx.NewOutput(sender, value.NewSimpleValue(500_000))))

	_, err = b.Build(sender, true, nil)
	require.Error(t, err)
}
