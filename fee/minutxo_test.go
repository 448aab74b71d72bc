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

package fee_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cardano/cardanotx/address"
	"github.com/go-cardano/cardanotx/fee"
	"github.com/go-cardano/cardanotx/hash"
	"github.com/go-cardano/cardanotx/protocol"
	"github.com/go-cardano/cardanotx/tx"
	"github.com/go-cardano/cardanotx/value"
)

func mustAddr(t *testing.T) address.Address {
	t.Helper()
	var b [28]byte
	b[0] = 0xAB
	h, err := hash.NewHash28(b[:])
	require.NoError(t, err)
	cred := address.KeyCredential(h)
	a, err := address.NewShelleyAddress(address.Mainnet, &cred, address.NoStaking())
	require.NoError(t, err)
	return address.FromShelley(a)
}

func TestMinLovelacePostAlonzoScalesWithSize(t *testing.T) {
	params := protocol.Mainnet()
	out := tx.NewOutput(mustAddr(t), value.NewSimpleValue(1_000_000))
	min, err := fee.MinLovelacePostAlonzo(out, params)
	require.NoError(t, err)
	require.Greater(t, min, int64(0))
}

func TestMinLovelacePreAlonzoBaseWords(t *testing.T) {
	params := protocol.Mainnet()
	got := fee.MinLovelacePreAlonzo(0, 0, 0, 0, params)
	require.Equal(t, int64(27)*int64(params.CoinsPerUTxOWord), got)
}

func TestMinLovelacePreAlonzoGrowsWithAssets(t *testing.T) {
	params := protocol.Mainnet()
	base := fee.MinLovelacePreAlonzo(0, 0, 0, 0, params)
	withAssets := fee.MinLovelacePreAlonzo(3, 30, 1, 0, params)
	require.Greater(t, withAssets, base)
}
