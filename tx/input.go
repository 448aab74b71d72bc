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

// Package tx implements the transaction entities (component H, spec
// §3.4, §3.7, §3.8): inputs/outputs/UTxO, the transaction body and
// witness set, certificates, governance objects, and the top-level
// Transaction, all array/map-shaped per the ledger's CDDL.
package tx

import "github.com/go-cardano/cardanotx/hash"

// Input is a TransactionInput: array-shaped [transaction_id, index]
// (spec §3.4).
type Input struct {
	TransactionID hash.TransactionId
	Index         uint32
}

// NewInput constructs a TransactionInput.
func NewInput(txID hash.TransactionId, index uint32) Input {
	return Input{TransactionID: txID, Index: index}
}

// wireInput is the array-shaped wire encoding of Input.
type wireInput struct {
	_             struct{} `cbor:",toarray"`
	TransactionID hash.TransactionId
	Index         uint32
}

func (i Input) MarshalCBOR() ([]byte, error) {
	return cborMarshal(wireInput{TransactionID: i.TransactionID, Index: i.Index})
}

func (i *Input) UnmarshalCBOR(data []byte) error {
	var w wireInput
	if err := cborUnmarshal(data, &w); err != nil {
		return err
	}
	i.TransactionID = w.TransactionID
	i.Index = w.Index
	return nil
}

// Less orders inputs the way the ledger canonically sorts them: by
// transaction id bytes, then by index (used when the builder needs a
// deterministic input ordering for fee estimation and signing).
func (i Input) Less(o Input) bool {
	c := i.TransactionID.Compare(o.TransactionID)
	if c != 0 {
		return c < 0
	}
	return i.Index < o.Index
}
