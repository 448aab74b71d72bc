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

package nativescript_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cardano/cardanotx/cborx"
	"github.com/go-cardano/cardanotx/hash"
	"github.com/go-cardano/cardanotx/nativescript"
)

func mustKeyHash(t *testing.T, seed byte) hash.VerificationKeyHash {
	t.Helper()
	var b [28]byte
	for i := range b {
		b[i] = seed
	}
	h, err := hash.NewHash28(b[:])
	require.NoError(t, err)
	return hash.VerificationKeyHash(h)
}

func TestScriptRoundTripAllVariants(t *testing.T) {
	vk1 := mustKeyHash(t, 0x01)
	vk2 := mustKeyHash(t, 0x02)

	cases := []nativescript.Script{
		nativescript.Pubkey(vk1),
		nativescript.All(nativescript.Pubkey(vk1), nativescript.Pubkey(vk2)),
		nativescript.Any(nativescript.Pubkey(vk1), nativescript.Pubkey(vk2)),
		nativescript.NofK(1, nativescript.Pubkey(vk1), nativescript.Pubkey(vk2)),
		nativescript.InvalidBefore(123456780),
		nativescript.InvalidHereafter(123456789),
	}

	for _, s := range cases {
		b, err := cborx.Marshal(s)
		require.NoError(t, err)

		var out nativescript.Script
		require.NoError(t, cborx.Unmarshal(b, &out))
		require.Equal(t, s, out)
	}
}

func TestScriptFromSpecS4(t *testing.T) {
	vk1 := mustKeyHash(t, 0x01)
	vk2 := mustKeyHash(t, 0x02)
	s := nativescript.All(
		nativescript.InvalidHereafter(123456789),
		nativescript.InvalidBefore(123456780),
		nativescript.Pubkey(vk1),
		nativescript.All(nativescript.Pubkey(vk1), nativescript.Pubkey(vk2)),
	)
	h, err := s.Hash()
	require.NoError(t, err)
	require.False(t, hash.Hash28(h).IsZero())
}

func TestScriptHashIsDeterministic(t *testing.T) {
	vk1 := mustKeyHash(t, 0x01)
	s := nativescript.Pubkey(vk1)
	h1, err := s.Hash()
	require.NoError(t, err)
	h2, err := s.Hash()
	require.NoError(t, err)
	require.Equal(t, h1, h2)
}
