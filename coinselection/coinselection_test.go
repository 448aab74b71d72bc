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

package coinselection_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cardano/cardanotx/address"
	"github.com/go-cardano/cardanotx/coinselection"
	"github.com/go-cardano/cardanotx/hash"
	"github.com/go-cardano/cardanotx/tx"
	"github.com/go-cardano/cardanotx/value"
)

func mustAddr(t *testing.T, seed byte) address.Address {
	t.Helper()
	var b [28]byte
	b[0] = seed
	h, err := hash.NewHash28(b[:])
	require.NoError(t, err)
	cred := address.KeyCredential(h)
	a, err := address.NewShelleyAddress(address.Testnet, &cred, address.NoStaking())
	require.NoError(t, err)
	return address.FromShelley(a)
}

func utxoOf(t *testing.T, idx uint32, coin int64) tx.UTxO {
	t.Helper()
	var txIDBytes [32]byte
	txIDBytes[0] = byte(idx + 1)
	in := tx.NewInput(hash.TransactionId(txIDBytes), idx)
	out := tx.NewOutput(mustAddr(t, byte(idx+1)), value.NewSimpleValue(coin))
	return tx.NewUTxO(in, out)
}

func TestLargestFirstSelectsFewestInputsNeeded(t *testing.T) {
	candidates := []tx.UTxO{
		utxoOf(t, 0, 1_000_000),
		utxoOf(t, 1, 10_000_000),
		utxoOf(t, 2, 5_000_000),
	}
	sel := coinselection.NewLargestFirst()
	result, err := sel.Select(candidates, value.NewSimpleValue(4_000_000), coinselection.Options{})
	require.NoError(t, err)
	require.Len(t, result.Selected, 1)
	require.Equal(t, int64(10_000_000), result.Selected[0].Output.Amount.Coin)
	require.Equal(t, int64(6_000_000), result.Change.Coin)
}

func TestLargestFirstTopsUpForMinUTxOChange(t *testing.T) {
	candidates := []tx.UTxO{
		utxoOf(t, 0, 4_000_100),
		utxoOf(t, 1, 2_000_000),
	}
	sel := coinselection.NewLargestFirst()
	opts := coinselection.Options{
		RespectMinUTxO: true,
		MinUTxOForChange: func(v value.Value) (int64, error) {
			return 1_000_000, nil
		},
	}
	// Requesting all but 100 lovelace of the first candidate forces the
	// leftover below min-utxo, so the selector must top up with the
	// second candidate rather than stop at one input.
	result, err := sel.Select(candidates, value.NewSimpleValue(4_000_000), opts)
	require.NoError(t, err)
	require.Len(t, result.Selected, 2)
	require.Equal(t, int64(2_000_100), result.Change.Coin)
}

func TestLargestFirstRespectsMaxInputCount(t *testing.T) {
	candidates := []tx.UTxO{
		utxoOf(t, 0, 1_000_000),
		utxoOf(t, 1, 1_000_000),
		utxoOf(t, 2, 1_000_000),
	}
	sel := coinselection.NewLargestFirst()
	_, err := sel.Select(candidates, value.NewSimpleValue(2_500_000), coinselection.Options{MaxInputCount: 2})
	require.Error(t, err)
}

func TestLargestFirstInsufficientBalance(t *testing.T) {
	candidates := []tx.UTxO{utxoOf(t, 0, 1_000_000)}
	sel := coinselection.NewLargestFirst()
	_, err := sel.Select(candidates, value.NewSimpleValue(5_000_000), coinselection.Options{})
	require.Error(t, err)
}
