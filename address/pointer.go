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

package address

import "github.com/go-cardano/cardanotx/apollerr"

// encodeVarLenBase128 encodes v as a variable-length base-128 integer:
// 7 bits of payload per byte, continuation bit is the high bit, most
// significant group first, last byte's high bit clear (spec §3.2).
func encodeVarLenBase128(v uint64) []byte {
	if v == 0 {
		return []byte{0}
	}
	var groups []byte
	for v > 0 {
		groups = append(groups, byte(v&0x7f))
		v >>= 7
	}
	// groups is least-significant-group first; emit most-significant first.
	out := make([]byte, len(groups))
	for i, g := range groups {
		idx := len(groups) - 1 - i
		if idx != len(groups)-1 {
			g |= 0x80
		}
		out[idx] = g
	}
	return out
}

// decodeVarLenBase128 reads one variable-length base-128 integer from
// the start of data, returning its value and the number of bytes
// consumed.
func decodeVarLenBase128(data []byte) (value uint64, consumed int, err error) {
	for i, b := range data {
		value = value<<7 | uint64(b&0x7f)
		if b&0x80 == 0 {
			return value, i + 1, nil
		}
	}
	return 0, 0, apollerr.Decoding("truncated variable-length integer")
}

// EncodePointer encodes a Pointer as three concatenated variable-length
// base-128 integers: slot, tx_index, cert_index.
func EncodePointer(p Pointer) []byte {
	out := encodeVarLenBase128(p.Slot)
	out = append(out, encodeVarLenBase128(p.TxIndex)...)
	out = append(out, encodeVarLenBase128(p.CertIndex)...)
	return out
}

// DecodePointer reads a Pointer from the start of data, returning the
// pointer and the number of bytes consumed.
func DecodePointer(data []byte) (Pointer, int, error) {
	slot, n1, err := decodeVarLenBase128(data)
	if err != nil {
		return Pointer{}, 0, err
	}
	txIdx, n2, err := decodeVarLenBase128(data[n1:])
	if err != nil {
		return Pointer{}, 0, err
	}
	certIdx, n3, err := decodeVarLenBase128(data[n1+n2:])
	if err != nil {
		return Pointer{}, 0, err
	}
	return Pointer{Slot: slot, TxIndex: txIdx, CertIndex: certIdx}, n1 + n2 + n3, nil
}
