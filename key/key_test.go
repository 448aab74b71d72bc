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

package key_test

import (
	"bytes"
	stded25519 "crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cardano/cardanotx/key"
)

func TestSigningKeySignVerify(t *testing.T) {
	seed := make([]byte, 32)
	_, err := rand.Read(seed)
	require.NoError(t, err)

	sk, err := key.NewSigningKey(seed)
	require.NoError(t, err)
	vk, err := sk.VerificationKey()
	require.NoError(t, err)

	msg := []byte("hello cardano")
	sig, err := sk.Sign(msg)
	require.NoError(t, err)
	require.True(t, vk.Verify(msg, sig))
	require.False(t, vk.Verify([]byte("tampered"), sig))
}

func TestVerificationKeyHashIsStable(t *testing.T) {
	seed := bytes.Repeat([]byte{0x07}, 32)
	sk, err := key.NewSigningKey(seed)
	require.NoError(t, err)
	vk, err := sk.VerificationKey()
	require.NoError(t, err)

	h1, err := vk.Hash()
	require.NoError(t, err)
	h2, err := vk.Hash()
	require.NoError(t, err)
	require.Equal(t, h1, h2)
}

func TestExtendedSigningKeySignVerify(t *testing.T) {
	raw := make([]byte, 64)
	_, err := rand.Read(raw)
	require.NoError(t, err)
	// Clamp as a real derivation would, so the scalar is valid.
	raw[0] &= 248
	raw[31] &= 127
	raw[31] |= 64

	sk, err := key.NewExtendedSigningKey(raw)
	require.NoError(t, err)
	vk, err := sk.VerificationKey()
	require.NoError(t, err)

	msg := []byte("extended key message")
	sig, err := sk.Sign(msg)
	require.NoError(t, err)
	require.Len(t, sig, 64)
	require.Len(t, vk.Bytes, 32)
	require.True(t, stded25519.Verify(stded25519.PublicKey(vk.Bytes), msg, sig))
}

func TestNewSigningKeyRejectsWrongLength(t *testing.T) {
	_, err := key.NewSigningKey(make([]byte, 10))
	require.Error(t, err)
}
