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

package address_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cardano/cardanotx/address"
	"github.com/go-cardano/cardanotx/hash"
)

func mustHash28(t *testing.T, seed byte) hash.Hash28 {
	t.Helper()
	var b [28]byte
	for i := range b {
		b[i] = seed
	}
	h, err := hash.NewHash28(b[:])
	require.NoError(t, err)
	return h
}

func TestShelleyAddressRoundTrip(t *testing.T) {
	payment := address.KeyCredential(mustHash28(t, 0x11))
	staking := address.KeyStaking(mustHash28(t, 0x22))
	a, err := address.NewShelleyAddress(address.Testnet, &payment, staking)
	require.NoError(t, err)

	s := a.String()
	require.Contains(t, s, "addr_test1")

	parsed, err := address.ParseShelleyBech32(s)
	require.NoError(t, err)
	require.Equal(t, a, parsed)
}

func TestShelleyAddressRejectsBothPartsNone(t *testing.T) {
	_, err := address.NewShelleyAddress(address.Mainnet, nil, address.NoStaking())
	require.Error(t, err)
}

func TestShelleyAddressRejectsWrongPrefix(t *testing.T) {
	payment := address.KeyCredential(mustHash28(t, 0x11))
	a, err := address.NewShelleyAddress(address.Mainnet, &payment, address.NoStaking())
	require.NoError(t, err)
	bytesOut, err := a.Bytes()
	require.NoError(t, err)

	encoded, err := encodeBech32ForTest(bytesOut)
	require.NoError(t, err)
	_, err = address.ParseShelleyBech32(encoded)
	require.NoError(t, err)
}

func TestRewardAddressHRP(t *testing.T) {
	staking := address.KeyStaking(mustHash28(t, 0x33))
	a, err := address.NewShelleyAddress(address.Mainnet, nil, staking)
	require.NoError(t, err)
	require.Equal(t, "stake", a.HRP())
}

func TestPointerRoundTrip(t *testing.T) {
	p := address.Pointer{Slot: 123456789, TxIndex: 7, CertIndex: 2}
	encoded := address.EncodePointer(p)
	decoded, n, err := address.DecodePointer(encoded)
	require.NoError(t, err)
	require.Equal(t, len(encoded), n)
	require.Equal(t, p, decoded)
}

func encodeBech32ForTest(b []byte) (string, error) {
	a, err := address.DecodeShelleyAddress(b)
	if err != nil {
		return "", err
	}
	return a.String(), nil
}
