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
	"fmt"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/btcsuite/btcutil/base58"
)

// Bech32Encode encodes data under the given human-readable prefix (addr,
// addr_test, stake, stake_test, pool, ...).
func Bech32Encode(hrp string, data []byte) (string, error) {
	converted, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("crypto: bech32 bit conversion: %w", err)
	}
	s, err := bech32.Encode(hrp, converted)
	if err != nil {
		return "", fmt.Errorf("crypto: bech32 encode: %w", err)
	}
	return s, nil
}

// Bech32Decode decodes a bech32 string, returning its human-readable
// prefix and raw payload bytes. Callers that expect a specific prefix
// (e.g. rejecting "pool1..." where an address was expected) must check
// hrp themselves — this function only validates the checksum.
func Bech32Decode(s string) (hrp string, data []byte, err error) {
	hrp, values, err := bech32.Decode(s)
	if err != nil {
		return "", nil, fmt.Errorf("crypto: bech32 decode: %w", err)
	}
	data, err = bech32.ConvertBits(values, 5, 8, false)
	if err != nil {
		return "", nil, fmt.Errorf("crypto: bech32 bit conversion: %w", err)
	}
	return hrp, data, nil
}

// Base58Encode encodes data as base58 (Byron addresses).
func Base58Encode(data []byte) string {
	return base58.Encode(data)
}

// Base58Decode decodes a base58 string.
func Base58Decode(s string) ([]byte, error) {
	decoded := base58.Decode(s)
	if len(decoded) == 0 && s != "" {
		return nil, fmt.Errorf("crypto: invalid base58 string %q", s)
	}
	return decoded, nil
}
