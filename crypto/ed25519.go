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

package crypto

import (
	stded25519 "crypto/ed25519"
	"fmt"

	"filippo.io/edwards25519"
)

// Sign signs message with a regular (non-extended) Ed25519 private key.
func Sign(privateKey, message []byte) ([]byte, error) {
	if len(privateKey) != stded25519.PrivateKeySize {
		return nil, fmt.Errorf("crypto: ed25519 private key must be %d bytes, got %d", stded25519.PrivateKeySize, len(privateKey))
	}
	return stded25519.Sign(stded25519.PrivateKey(privateKey), message), nil
}

// Verify checks an Ed25519 signature against a public key.
func Verify(publicKey, message, signature []byte) bool {
	if len(publicKey) != stded25519.PublicKeySize {
		return false
	}
	return stded25519.Verify(stded25519.PublicKey(publicKey), message, signature)
}

// PublicFromPrivate derives the public key from a regular 64-byte
// Ed25519 private key (seed||public, the stdlib's representation).
func PublicFromPrivate(privateKey []byte) ([]byte, error) {
	if len(privateKey) != stded25519.PrivateKeySize {
		return nil, fmt.Errorf("crypto: ed25519 private key must be %d bytes, got %d", stded25519.PrivateKeySize, len(privateKey))
	}
	pub := stded25519.PrivateKey(privateKey).Public().(stded25519.PublicKey)
	return []byte(pub), nil
}

// ExtendedSigningKeySize is the size of a BIP32-Ed25519 extended private
// key: a 32-byte clamped scalar followed by a 32-byte nonce-derivation
// seed (CIP-1852 / Icarus derivation), as consumed by HD wallets.
const ExtendedSigningKeySize = 64

// SignExtended signs message with a BIP32-Ed25519 extended private key
// (scalar || nonce seed), per the extended-key signing scheme HD wallets
// and Daedalus/Icarus-derived keys use: unlike stdlib Ed25519, the
// scalar here is not re-derived from a seed via SHA-512/clamping — it is
// used directly, since it was already produced (and clamped) by the
// BIP32 derivation chain.
func SignExtended(extendedKey, message []byte) ([]byte, error) {
	if len(extendedKey) != ExtendedSigningKeySize {
		return nil, fmt.Errorf("crypto: extended ed25519 key must be %d bytes, got %d", ExtendedSigningKeySize, len(extendedKey))
	}
	scalarBytes := extendedKey[:32]
	nonceSeed := extendedKey[32:64]

	scalar, err := edwards25519.NewScalar().SetBytesWithClamping(scalarBytes)
	if err != nil {
		return nil, fmt.Errorf("crypto: invalid extended key scalar: %w", err)
	}
	pubPoint := new(edwards25519.Point).ScalarBaseMult(scalar)
	pub := pubPoint.Bytes()

	// r = SHA-512(nonceSeed || message) reduced mod L, R = r*B.
	rHash := SHA512(append(append([]byte{}, nonceSeed...), message...))
	r, err := edwards25519.NewScalar().SetUniformBytes(rHash[:])
	if err != nil {
		return nil, fmt.Errorf("crypto: nonce scalar: %w", err)
	}
	rPoint := new(edwards25519.Point).ScalarBaseMult(r)
	rBytes := rPoint.Bytes()

	// k = SHA-512(R || A || message) reduced mod L.
	kInput := append(append(append([]byte{}, rBytes...), pub...), message...)
	kHash := SHA512(kInput)
	k, err := edwards25519.NewScalar().SetUniformBytes(kHash[:])
	if err != nil {
		return nil, fmt.Errorf("crypto: challenge scalar: %w", err)
	}

	// s = r + k*scalar (mod L).
	s := edwards25519.NewScalar().MultiplyAdd(k, scalar, r)

	sig := make([]byte, 64)
	copy(sig[:32], rBytes)
	copy(sig[32:], s.Bytes())
	return sig, nil
}

// PublicFromExtended derives the 32-byte public key from an extended
// private key's scalar half.
func PublicFromExtended(extendedKey []byte) ([]byte, error) {
	if len(extendedKey) != ExtendedSigningKeySize {
		return nil, fmt.Errorf("crypto: extended ed25519 key must be %d bytes, got %d", ExtendedSigningKeySize, len(extendedKey))
	}
	scalar, err := edwards25519.NewScalar().SetBytesWithClamping(extendedKey[:32])
	if err != nil {
		return nil, fmt.Errorf("crypto: invalid extended key scalar: %w", err)
	}
	pubPoint := new(edwards25519.Point).ScalarBaseMult(scalar)
	return pubPoint.Bytes(), nil
}
