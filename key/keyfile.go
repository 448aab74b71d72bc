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

package key

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/cborx"
)

// Well-known key-file type tags (spec §6.3), matching the reference
// CLI's conventions.
const (
	TypePaymentSigningKey         = "PaymentSigningKeyShelley_ed25519"
	TypePaymentVerificationKey    = "PaymentVerificationKeyShelley_ed25519"
	TypePaymentExtendedSigningKey = "PaymentExtendedSigningKeyShelley_ed25519_bip32"
	TypeStakeSigningKey           = "StakeSigningKeyShelley_ed25519"
	TypeStakeVerificationKey      = "StakeVerificationKeyShelley_ed25519"
)

// File is the JSON key-file envelope (spec §6.3): `{type, description,
// cborHex}`, where cborHex decodes to a single CBOR byte string
// carrying the raw key material.
type File struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	CBORHex     string `json:"cborHex"`
}

// RawBytes decodes the file's cborHex field back into the raw key
// bytes it wraps.
func (f File) RawBytes() ([]byte, error) {
	raw, err := hex.DecodeString(f.CBORHex)
	if err != nil {
		return nil, apollerr.Decoding("key file: cborHex is not valid hex: %v", err)
	}
	var b []byte
	if err := cborx.Unmarshal(raw, &b); err != nil {
		return nil, apollerr.Decoding("key file: cborHex does not decode to a byte string: %v", err)
	}
	return b, nil
}

// NewFile builds a key-file envelope wrapping raw key bytes as a CBOR
// byte string.
func NewFile(keyType, description string, raw []byte) (File, error) {
	b, err := cborx.Marshal(raw)
	if err != nil {
		return File{}, err
	}
	return File{Type: keyType, Description: description, CBORHex: hex.EncodeToString(b)}, nil
}

// ReadFile loads and parses a key file from disk.
func ReadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("key: read %s: %w", path, err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return File{}, apollerr.Decoding("key file %s: %v", path, err)
	}
	return f, nil
}

// SaveFile writes f to path as indented JSON, refusing to overwrite a
// file that already has content (spec §6.3) — a non-empty destination
// is assumed to hold real key material the caller did not mean to
// clobber.
func SaveFile(path string, f File) error {
	if info, err := os.Stat(path); err == nil && info.Size() > 0 {
		return apollerr.InvalidOperation("key: refusing to overwrite non-empty file %s", path)
	} else if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("key: stat %s: %w", path, err)
	}
	data, err := json.MarshalIndent(f, "", "    ")
	if err != nil {
		return fmt.Errorf("key: marshal %s: %w", path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("key: write %s: %w", path, err)
	}
	return nil
}

// LoadSigningKey reads a signing-key file and validates its type tag.
func LoadSigningKey(path, wantType string) (SigningKey, error) {
	f, err := ReadFile(path)
	if err != nil {
		return SigningKey{}, err
	}
	if f.Type != wantType {
		return SigningKey{}, apollerr.InvalidKeyType(f.Type, wantType)
	}
	raw, err := f.RawBytes()
	if err != nil {
		return SigningKey{}, err
	}
	return NewSigningKey(raw)
}

// SaveSigningKey writes sk to path with the given type tag and
// description.
func SaveSigningKey(path, keyType, description string, sk SigningKey) error {
	f, err := NewFile(keyType, description, sk.Bytes)
	if err != nil {
		return err
	}
	return SaveFile(path, f)
}

// LoadExtendedSigningKey reads an extended-signing-key file and
// validates its type tag.
func LoadExtendedSigningKey(path, wantType string) (ExtendedSigningKey, error) {
	f, err := ReadFile(path)
	if err != nil {
		return ExtendedSigningKey{}, err
	}
	if f.Type != wantType {
		return ExtendedSigningKey{}, apollerr.InvalidKeyType(f.Type, wantType)
	}
	raw, err := f.RawBytes()
	if err != nil {
		return ExtendedSigningKey{}, err
	}
	return NewExtendedSigningKey(raw)
}

// SaveExtendedSigningKey writes sk to path with the given type tag and
// description.
func SaveExtendedSigningKey(path, keyType, description string, sk ExtendedSigningKey) error {
	f, err := NewFile(keyType, description, sk.Bytes)
	if err != nil {
		return err
	}
	return SaveFile(path, f)
}
