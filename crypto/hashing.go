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

// Package crypto wraps the primitive cryptography this module needs
// (component C): Ed25519 and extended-Ed25519 signing, Blake2b-224/256
// and SHA-2 hashing, bech32 and base58 text encodings. It intentionally
// does not implement any of these algorithms itself — everything here is
// a thin call into golang.org/x/crypto, filippo.io/edwards25519, or
// btcsuite/btcutil, the same ecosystem libraries the rest of the pack
// leans on for the same concerns.
package crypto

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Blake2b224 returns the 28-byte Blake2b-224 digest of data, used for
// verification key hashes, script hashes, and pool key hashes.
func Blake2b224(data []byte) [28]byte {
	h, err := blake2b.New(28, nil)
	if err != nil {
		// Only returns an error for an out-of-range size or bad key;
		// both are compile-time constants here.
		panic(fmt.Errorf("crypto: blake2b-224: %w", err))
	}
	h.Write(data)
	var out [28]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Blake2b256 returns the 32-byte Blake2b-256 digest of data, used for
// datum hashes and transaction ids.
func Blake2b256(data []byte) [32]byte {
	return blake2b.Sum256(data)
}

// SHA256 returns the SHA-256 digest of data.
func SHA256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// SHA512 returns the SHA-512 digest of data, used by BIP-32/Ed25519 key
// derivation.
func SHA512(data []byte) [64]byte {
	return sha512.Sum512(data)
}
