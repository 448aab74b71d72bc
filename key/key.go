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

// Package key implements signing/verification key types and key pairs
// (component D, spec §3.1/§4): regular Ed25519 keys and extended
// (BIP32-Ed25519) keys, both round-tripping through the JSON key-file
// format in spec §6.3.
package key

import (
	"crypto/ed25519"

	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/crypto"
	"github.com/go-cardano/cardanotx/hash"
)

// VerificationKey is a regular Ed25519 public key.
type VerificationKey struct {
	Bytes []byte
}

// SigningKey is a regular Ed25519 private key (32-byte seed form).
type SigningKey struct {
	Bytes []byte
}

// ExtendedVerificationKey is a BIP32-Ed25519 extended public key: a
// 32-byte curve point plus the 32-byte chain code used in key
// derivation.
type ExtendedVerificationKey struct {
	Bytes []byte // 64 bytes: point || chain code
}

// ExtendedSigningKey is a BIP32-Ed25519 extended private key: a
// 64-byte expanded scalar/nonce pair, a 32-byte chain code, and the
// public key cached alongside it (apollo/PyCardano carry 96 bytes
// total: 64 key material + 32 chain code).
type ExtendedSigningKey struct {
	Bytes []byte // 64 bytes: scalar || nonce, chain code appended by derivation callers
}

// NewSigningKey wraps a raw 32-byte Ed25519 seed.
func NewSigningKey(seed []byte) (SigningKey, error) {
	if len(seed) != ed25519.SeedSize {
		return SigningKey{}, apollerr.InvalidKeyType("signing key", "32-byte seed")
	}
	out := make([]byte, len(seed))
	copy(out, seed)
	return SigningKey{Bytes: out}, nil
}

// VerificationKey derives the corresponding public key.
func (k SigningKey) VerificationKey() (VerificationKey, error) {
	pub, err := crypto.PublicFromPrivate(ed25519.NewKeyFromSeed(k.Bytes))
	if err != nil {
		return VerificationKey{}, err
	}
	return VerificationKey{Bytes: pub}, nil
}

// Sign signs message with the regular Ed25519 scheme. SigningKey
// stores the 32-byte seed (the key file's on-disk form, spec §6.3);
// stdlib Ed25519 signs with the 64-byte seed||public expansion.
func (k SigningKey) Sign(message []byte) ([]byte, error) {
	return crypto.Sign(ed25519.NewKeyFromSeed(k.Bytes), message)
}

// Hash computes the verification key hash (spec §3.1): Blake2b-224 of
// the raw public key bytes.
func (k VerificationKey) Hash() (hash.VerificationKeyHash, error) {
	digest := crypto.Blake2b224(k.Bytes)
	h28, err := hash.NewHash28(digest[:])
	if err != nil {
		return hash.VerificationKeyHash{}, err
	}
	return hash.VerificationKeyHash(h28), nil
}

// Verify checks sig over message against k.
func (k VerificationKey) Verify(message, sig []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(k.Bytes), message, sig)
}

// NewExtendedSigningKey wraps raw extended key material (spec §3.1,
// §9 Open Question resolved by following BIP32-Ed25519 as apollo does).
func NewExtendedSigningKey(raw []byte) (ExtendedSigningKey, error) {
	if len(raw) != 64 {
		return ExtendedSigningKey{}, apollerr.InvalidKeyType("extended signing key", "64-byte scalar||nonce")
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return ExtendedSigningKey{Bytes: out}, nil
}

// VerificationKey derives the extended public key.
func (k ExtendedSigningKey) VerificationKey() (ExtendedVerificationKey, error) {
	pub, err := crypto.PublicFromExtended(k.Bytes)
	if err != nil {
		return ExtendedVerificationKey{}, err
	}
	return ExtendedVerificationKey{Bytes: pub}, nil
}

// Sign signs message with the extended (BIP32-Ed25519) scheme.
func (k ExtendedSigningKey) Sign(message []byte) ([]byte, error) {
	return crypto.SignExtended(k.Bytes, message)
}

// Hash computes the extended verification key hash: Blake2b-224 of the
// 32-byte curve point only, chain code excluded (spec §3.1).
func (k ExtendedVerificationKey) Hash() (hash.VerificationKeyHash, error) {
	if len(k.Bytes) < 32 {
		return hash.VerificationKeyHash{}, apollerr.InvalidKeyType("extended verification key", "at least 32 bytes")
	}
	digest := crypto.Blake2b224(k.Bytes[:32])
	h28, err := hash.NewHash28(digest[:])
	if err != nil {
		return hash.VerificationKeyHash{}, err
	}
	return hash.VerificationKeyHash(h28), nil
}

// KeyPair bundles a signing key with its derived verification key.
type KeyPair struct {
	SigningKey      SigningKey
	VerificationKey VerificationKey
}

// NewKeyPair derives the verification key from sk.
func NewKeyPair(sk SigningKey) (KeyPair, error) {
	vk, err := sk.VerificationKey()
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{SigningKey: sk, VerificationKey: vk}, nil
}

// ExtendedKeyPair bundles an extended signing key with its derived
// verification key.
type ExtendedKeyPair struct {
	SigningKey      ExtendedSigningKey
	VerificationKey ExtendedVerificationKey
}

// NewExtendedKeyPair derives the verification key from sk.
func NewExtendedKeyPair(sk ExtendedSigningKey) (ExtendedKeyPair, error) {
	vk, err := sk.VerificationKey()
	if err != nil {
		return ExtendedKeyPair{}, err
	}
	return ExtendedKeyPair{SigningKey: sk, VerificationKey: vk}, nil
}
