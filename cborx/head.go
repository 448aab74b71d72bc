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

package cborx

import "fmt"

// ItemLength exposes itemLength for packages (plutus's arbitrary-key
// map decoder) that need to find data-item boundaries inside a raw
// CBOR buffer without decoding into a concrete Go type.
func ItemLength(data []byte) (int, error) { return itemLength(data) }

// DecodeHead exposes the initial-byte parse for callers that need to
// walk a raw map/array head themselves (plutus data's Map variant,
// whose keys are arbitrary PlutusData and so can't be decoded through
// a plain Go map).
func DecodeHead(data []byte) (headLen int, major byte, argument uint64, isIndef bool, err error) {
	if len(data) == 0 {
		return 0, 0, 0, false, fmt.Errorf("cborx: empty input")
	}
	head := data[0]
	major = head >> 5
	info := head & 0x1f
	headLen, argument, isIndef, err = decodeArgument(data, info)
	return headLen, major, argument, isIndef, err
}

// BreakByte is the CBOR indefinite-length terminator (0xff).
const BreakByte = breakByte
