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

import (
	"bytes"
	"fmt"
)

// PlutusByteStringChunkSize is the chunk width the ledger uses when a
// Plutus data byte string exceeds 64 bytes: it is encoded as an
// indefinite-length byte string of 64-byte definite chunks rather than
// a single definite-length byte string (spec §3.6) — datum/redeemer
// hashes depend on this exact shape.
const PlutusByteStringChunkSize = 64

// EncodeChunkedByteString encodes b as an indefinite-length byte
// string when it exceeds PlutusByteStringChunkSize, or as a plain
// definite-length byte string otherwise.
func EncodeChunkedByteString(b []byte) ([]byte, error) {
	if len(b) <= PlutusByteStringChunkSize {
		return Marshal(b)
	}
	var buf bytes.Buffer
	buf.WriteByte(0x5f)
	for off := 0; off < len(b); off += PlutusByteStringChunkSize {
		end := off + PlutusByteStringChunkSize
		if end > len(b) {
			end = len(b)
		}
		chunk, err := Marshal(b[off:end])
		if err != nil {
			return nil, fmt.Errorf("cborx: chunked byte string: %w", err)
		}
		buf.Write(chunk)
	}
	buf.WriteByte(breakByte)
	return buf.Bytes(), nil
}

// DecodeChunkedByteString decodes either shape back into a flat byte
// slice.
func DecodeChunkedByteString(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("cborx: chunked byte string: empty input")
	}
	if data[0] != 0x5f {
		var b []byte
		if err := Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("cborx: chunked byte string: %w", err)
		}
		return b, nil
	}
	rest := data[1:]
	var out bytes.Buffer
	for {
		if len(rest) == 0 {
			return nil, fmt.Errorf("cborx: chunked byte string: truncated before break")
		}
		if rest[0] == breakByte {
			rest = rest[1:]
			break
		}
		n, err := itemLength(rest)
		if err != nil {
			return nil, fmt.Errorf("cborx: chunked byte string: %w", err)
		}
		var chunk []byte
		if err := Unmarshal(rest[:n], &chunk); err != nil {
			return nil, fmt.Errorf("cborx: chunked byte string chunk: %w", err)
		}
		out.Write(chunk)
		rest = rest[n:]
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("cborx: chunked byte string: %d unexpected trailing byte(s)", len(rest))
	}
	return out.Bytes(), nil
}
