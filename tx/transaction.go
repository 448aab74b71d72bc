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

package tx

import (
	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/cborx"
	"github.com/go-cardano/cardanotx/crypto"
	"github.com/go-cardano/cardanotx/hash"
)

// Transaction is the top-level array-shaped `[body, witness_set,
// valid, auxiliary_data]` ledger object (spec §3.4). Valid is true for
// every transaction this module builds; it only turns false for
// phase-2-invalid transactions recorded on chain, which this module
// never constructs.
type Transaction struct {
	Body          Body
	WitnessSet    WitnessSet
	Valid         bool
	AuxiliaryData *AuxiliaryData
}

// NewTransaction constructs a valid Transaction with no auxiliary data.
func NewTransaction(body Body, witnessSet WitnessSet) Transaction {
	return Transaction{Body: body, WitnessSet: witnessSet, Valid: true}
}

type wireTransaction struct {
	_             struct{} `cbor:",toarray"`
	Body          Body
	WitnessSet    WitnessSet
	Valid         bool
	AuxiliaryData any
}

func (t Transaction) MarshalCBOR() ([]byte, error) {
	var aux any
	if t.AuxiliaryData != nil {
		aux = *t.AuxiliaryData
	}
	return cborMarshal(wireTransaction{Body: t.Body, WitnessSet: t.WitnessSet, Valid: t.Valid, AuxiliaryData: aux})
}

type wireTransactionRaw struct {
	_             struct{} `cbor:",toarray"`
	Body          Body
	WitnessSet    WitnessSet
	Valid         bool
	AuxiliaryData cborx.RawMessage
}

func (t *Transaction) UnmarshalCBOR(data []byte) error {
	var w wireTransactionRaw
	if err := cborUnmarshal(data, &w); err != nil {
		return apollerr.Decoding("tx: transaction: %v", err)
	}
	out := Transaction{Body: w.Body, WitnessSet: w.WitnessSet, Valid: w.Valid}
	if len(w.AuxiliaryData) > 0 && !isNullCBOR(w.AuxiliaryData) {
		var aux AuxiliaryData
		if err := aux.UnmarshalCBOR(w.AuxiliaryData); err != nil {
			return err
		}
		out.AuxiliaryData = &aux
	}
	*t = out
	return nil
}

func isNullCBOR(raw cborx.RawMessage) bool {
	return len(raw) == 1 && raw[0] == 0xf6
}

// ID computes the transaction id: the Blake2b-256 hash of the
// canonical CBOR encoding of the body alone (spec §3.4) — witnesses
// and auxiliary data are not covered, so attaching a signature never
// changes a transaction's id.
func (t Transaction) ID() (hash.TransactionId, error) {
	bodyCBOR, err := t.Body.MarshalCBOR()
	if err != nil {
		return hash.TransactionId{}, err
	}
	digest := crypto.Blake2b256(bodyCBOR)
	return hash.TransactionId(digest), nil
}
