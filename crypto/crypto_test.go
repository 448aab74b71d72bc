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

package crypto_test

import (
	stded25519 "crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cardano/cardanotx/crypto"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	pub, priv, err := stded25519.GenerateKey(nil)
	require.NoError(t, err)

	msg := []byte("hello cardano")
	sig, err := crypto.Sign(priv, msg)
	require.NoError(t, err)
	require.True(t, crypto.Verify(pub, msg, sig))
	require.False(t, crypto.Verify(pub, []byte("tampered"), sig))
}

func TestBlake2bSizes(t *testing.T) {
	h28 := crypto.Blake2b224([]byte("abc"))
	require.Len(t, h28, 28)
	h32 := crypto.Blake2b256([]byte("abc"))
	require.Len(t, h32, 32)
	require.NotEqual(t, h28[:], h32[:24])
}

func TestBech32RoundTrip(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	s, err := crypto.Bech32Encode("addr_test", payload)
	require.NoError(t, err)

	hrp, decoded, err := crypto.Bech32Decode(s)
	require.NoError(t, err)
	require.Equal(t, "addr_test", hrp)
	require.Equal(t, payload, decoded)
}

func TestBech32RejectsWrongPrefix(t *testing.T) {
	s, err := crypto.Bech32Encode("pool", []byte{0xaa})
	require.NoError(t, err)
	hrp, _, err := crypto.Bech32Decode(s)
	require.NoError(t, err)
	require.NotEqual(t, "addr", hrp)
}

func TestBase58RoundTrip(t *testing.T) {
	payload := []byte{0, 1, 2, 250, 251, 252}
	s := crypto.Base58Encode(payload)
	decoded, err := crypto.Base58Decode(s)
	require.NoError(t, err)
	require.Equal(t, payload, decoded)
}
