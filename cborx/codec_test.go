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

package cborx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cardano/cardanotx/cborx"
)

type simpleArray struct {
	_    struct{} `cbor:",toarray"`
	A    uint64
	B    []byte
	Text string
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	in := simpleArray{A: 7, B: []byte{1, 2, 3}, Text: "hello"}
	b, err := cborx.Marshal(in)
	require.NoError(t, err)

	var out simpleArray
	require.NoError(t, cborx.Unmarshal(b, &out))
	require.Equal(t, in, out)
}

func TestUnmarshalRejectsTrailingBytes(t *testing.T) {
	in := simpleArray{A: 1}
	b, err := cborx.Marshal(in)
	require.NoError(t, err)
	b = append(b, 0x00)

	var out simpleArray
	require.Error(t, cborx.Unmarshal(b, &out))
}

func TestIndefListRoundTrip(t *testing.T) {
	in := cborx.IndefList[uint64]{1, 2, 3, 4}
	b, err := cborx.Marshal(in)
	require.NoError(t, err)
	require.Equal(t, byte(0x9f), b[0])
	require.Equal(t, byte(0xff), b[len(b)-1])

	var out cborx.IndefList[uint64]
	require.NoError(t, cborx.Unmarshal(b, &out))
	require.Equal(t, in, out)
}

func TestIndefListOfStrings(t *testing.T) {
	in := cborx.IndefList[string]{"alpha", "beta", "gamma delta epsilon"}
	b, err := cborx.Marshal(in)
	require.NoError(t, err)

	var out cborx.IndefList[string]
	require.NoError(t, cborx.Unmarshal(b, &out))
	require.Equal(t, in, out)
}
