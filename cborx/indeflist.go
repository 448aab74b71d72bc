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

// IndefList is an indefinite-length CBOR array (major type 4, break-
// terminated), per DESIGN NOTES: Plutus data field lists and a handful of
// ledger list fields are indefinite-length by convention, which is
// semantically significant (it round-trips differently than a definite
// array of the same contents would), so it gets its own wrapper type
// rather than a flag on []T.
type IndefList[T any] []T

const (
	indefArrayHead byte = 0x9f
	breakByte      byte = 0xff
)

// MarshalCBOR encodes the list with an indefinite-length head/break,
// encoding each element with the module's canonical profile.
func (l IndefList[T]) MarshalCBOR() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte(indefArrayHead)
	for i, item := range l {
		b, err := Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("cborx: IndefList[%d]: %w", i, err)
		}
		buf.Write(b)
	}
	buf.WriteByte(breakByte)
	return buf.Bytes(), nil
}

// UnmarshalCBOR decodes an indefinite-length array, rejecting definite-
// length input (callers that want to accept both should decode into []T
// first and only reach for IndefList on the encode side).
func (l *IndefList[T]) UnmarshalCBOR(data []byte) error {
	if len(data) == 0 || data[0] != indefArrayHead {
		return fmt.Errorf("cborx: IndefList: missing indefinite-length array head")
	}
	rest := data[1:]
	out := make([]T, 0)
	for {
		if len(rest) == 0 {
			return fmt.Errorf("cborx: IndefList: truncated before break")
		}
		if rest[0] == breakByte {
			rest = rest[1:]
			break
		}
		n, err := itemLength(rest)
		if err != nil {
			return fmt.Errorf("cborx: IndefList: %w", err)
		}
		var item T
		if err := Unmarshal(rest[:n], &item); err != nil {
			return fmt.Errorf("cborx: IndefList element: %w", err)
		}
		out = append(out, item)
		rest = rest[n:]
	}
	if len(rest) != 0 {
		return fmt.Errorf("cborx: IndefList: %d unexpected trailing byte(s)", len(rest))
	}
	*l = out
	return nil
}

// itemLength returns the byte length of the single well-formed CBOR data
// item at the start of data, without fully decoding it. Used to find
// element boundaries inside an indefinite-length container.
func itemLength(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("empty input")
	}
	head := data[0]
	major := head >> 5
	info := head & 0x1f

	headLen, argument, isIndef, err := decodeArgument(data, info)
	if err != nil {
		return 0, err
	}

	switch major {
	case 0, 1: // unsigned/negative int
		return headLen, nil
	case 2, 3: // byte string / text string
		if isIndef {
			return indefChunkedLength(data, headLen)
		}
		total := headLen + int(argument)
		if total > len(data) {
			return 0, fmt.Errorf("truncated string")
		}
		return total, nil
	case 4: // array
		return containerLength(data, headLen, argument, isIndef, 1)
	case 5: // map
		return containerLength(data, headLen, argument, isIndef, 2)
	case 6: // tag
		n, err := itemLength(data[headLen:])
		if err != nil {
			return 0, err
		}
		return headLen + n, nil
	case 7: // simple/float
		return headLen, nil
	default:
		return 0, fmt.Errorf("unsupported major type %d", major)
	}
}

// decodeArgument parses the "additional information" following the
// initial byte, returning the bytes consumed by the head, the argument
// value (element/byte count, unused for indefinite), and whether this is
// an indefinite-length head (info == 31).
func decodeArgument(data []byte, info byte) (headLen int, argument uint64, isIndef bool, err error) {
	switch {
	case info < 24:
		return 1, uint64(info), false, nil
	case info == 24:
		if len(data) < 2 {
			return 0, 0, false, fmt.Errorf("truncated 1-byte argument")
		}
		return 2, uint64(data[1]), false, nil
	case info == 25:
		if len(data) < 3 {
			return 0, 0, false, fmt.Errorf("truncated 2-byte argument")
		}
		return 3, uint64(data[1])<<8 | uint64(data[2]), false, nil
	case info == 26:
		if len(data) < 5 {
			return 0, 0, false, fmt.Errorf("truncated 4-byte argument")
		}
		v := uint64(0)
		for _, b := range data[1:5] {
			v = v<<8 | uint64(b)
		}
		return 5, v, false, nil
	case info == 27:
		if len(data) < 9 {
			return 0, 0, false, fmt.Errorf("truncated 8-byte argument")
		}
		v := uint64(0)
		for _, b := range data[1:9] {
			v = v<<8 | uint64(b)
		}
		return 9, v, false, nil
	case info == 31:
		return 1, 0, true, nil
	default:
		return 0, 0, false, fmt.Errorf("reserved additional info %d", info)
	}
}

// indefChunkedLength scans an indefinite-length byte/text string (a
// sequence of definite-length chunks terminated by a break byte).
func indefChunkedLength(data []byte, headLen int) (int, error) {
	pos := headLen
	for {
		if pos >= len(data) {
			return 0, fmt.Errorf("truncated indefinite string")
		}
		if data[pos] == breakByte {
			return pos + 1, nil
		}
		n, err := itemLength(data[pos:])
		if err != nil {
			return 0, err
		}
		pos += n
	}
}

// containerLength scans a definite or indefinite array/map, where each
// map entry counts as entryWidth (2) items and each array entry as 1.
func containerLength(data []byte, headLen int, count uint64, isIndef bool, entryWidth int) (int, error) {
	pos := headLen
	if isIndef {
		for {
			if pos >= len(data) {
				return 0, fmt.Errorf("truncated indefinite container")
			}
			if data[pos] == breakByte {
				return pos + 1, nil
			}
			n, err := itemLength(data[pos:])
			if err != nil {
				return 0, err
			}
			pos += n
		}
	}
	total := count * uint64(entryWidth)
	for range total {
		if pos >= len(data) {
			return 0, fmt.Errorf("truncated container")
		}
		n, err := itemLength(data[pos:])
		if err != nil {
			return 0, err
		}
		pos += n
	}
	return pos, nil
}
