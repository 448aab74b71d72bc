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

package chaincontext

import (
	"github.com/go-cardano/cardanotx/address"
	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/crypto"
	"github.com/go-cardano/cardanotx/hash"
	"github.com/go-cardano/cardanotx/plutus"
	"github.com/go-cardano/cardanotx/protocol"
	"github.com/go-cardano/cardanotx/tx"
)

// UTxOsFunc is a callback for address-keyed UTxO lookups.
type UTxOsFunc func(addr address.Address) ([]tx.UTxO, error)

// SubmitTxFunc is a callback for transaction submission.
type SubmitTxFunc func(cborBytes []byte) (hash.TransactionId, error)

// EvaluateTxFunc is a callback for Plutus script evaluation.
type EvaluateTxFunc func(cborBytes []byte) (map[plutus.RedeemerKey]plutus.ExecutionUnits, error)

// Static is an in-memory ChainContext test double, grounded on the
// teacher's MockLedgerState (ledger/state.go): every query is answered
// by a struct field, with an optional callback for the ones a test
// wants to customize. It is not a production chain context — just what
// this module's own tests and cmd/txdemo use to reproduce spec.md
// §8.3's scenarios deterministically (spec §6).
type Static struct {
	Params  protocol.Parameters
	Genesis protocol.GenesisParameters
	Net     address.Network
	EpochNo uint64
	Slot    uint64

	// UTxOsByAddress answers UTxOs keyed by address.String(); set
	// directly for the common case, or override with UTxOsCallback for
	// dynamic lookups.
	UTxOsByAddress map[string][]tx.UTxO
	UTxOsCallback  UTxOsFunc

	// Submitted records every SubmitTx call's payload, in order.
	Submitted        [][]byte
	SubmitTxCallback SubmitTxFunc

	// EvaluateResult is returned verbatim from EvaluateTx unless
	// EvaluateTxCallback is set.
	EvaluateResult     map[plutus.RedeemerKey]plutus.ExecutionUnits
	EvaluateTxCallback EvaluateTxFunc
}

// NewStatic constructs a Static fixture over the given protocol and
// genesis parameters.
func NewStatic(params protocol.Parameters, genesis protocol.GenesisParameters, net address.Network) *Static {
	return &Static{
		Params:         params,
		Genesis:        genesis,
		Net:            net,
		UTxOsByAddress: make(map[string][]tx.UTxO),
	}
}

// AddUTxO registers a UTxO as spendable from addr.
func (s *Static) AddUTxO(addr address.Address, u tx.UTxO) {
	key := addr.String()
	s.UTxOsByAddress[key] = append(s.UTxOsByAddress[key], u)
}

func (s *Static) ProtocolParameters() (protocol.Parameters, error)       { return s.Params, nil }
func (s *Static) GenesisParameters() (protocol.GenesisParameters, error) { return s.Genesis, nil }
func (s *Static) Network() (address.Network, error)                     { return s.Net, nil }
func (s *Static) Epoch() (uint64, error)                                { return s.EpochNo, nil }
func (s *Static) LastBlockSlot() (uint64, error)                        { return s.Slot, nil }

func (s *Static) UTxOs(addr address.Address) ([]tx.UTxO, error) {
	if s.UTxOsCallback != nil {
		return s.UTxOsCallback(addr)
	}
	return s.UTxOsByAddress[addr.String()], nil
}

func (s *Static) SubmitTx(cborBytes []byte) (hash.TransactionId, error) {
	s.Submitted = append(s.Submitted, cborBytes)
	if s.SubmitTxCallback != nil {
		return s.SubmitTxCallback(cborBytes)
	}
	return hash.TransactionId(crypto.Blake2b256(cborBytes)), nil
}

func (s *Static) EvaluateTx(cborBytes []byte) (map[plutus.RedeemerKey]plutus.ExecutionUnits, error) {
	if s.EvaluateTxCallback != nil {
		return s.EvaluateTxCallback(cborBytes)
	}
	if s.EvaluateResult == nil {
		return nil, apollerr.InvalidOperation("chaincontext: static fixture has no evaluate_tx result configured")
	}
	return s.EvaluateResult, nil
}

var _ ChainContext = (*Static)(nil)
