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

// Package chaincontext defines ChainContext, the Go form of the
// external backend interface spec.md §6.1 consumes (component K's only
// collaborator outside this module): protocol/genesis parameters,
// network identity, UTxO lookups, submission, and Plutus evaluation.
// Production adapters (Blockfrost, Ogmios, Kupo, cardano-cli) are out
// of scope per spec.md §1 — only Static, an in-memory test double, is
// shipped here.
package chaincontext

import (
	"github.com/go-cardano/cardanotx/address"
	"github.com/go-cardano/cardanotx/hash"
	"github.com/go-cardano/cardanotx/plutus"
	"github.com/go-cardano/cardanotx/protocol"
	"github.com/go-cardano/cardanotx/tx"
)

// ChainContext is everything txbuilder.Builder needs from a live
// backend (spec §6.1). All methods may block on network I/O; the
// builder calls each at most once per build cycle (spec §5).
type ChainContext interface {
	ProtocolParameters() (protocol.Parameters, error)
	GenesisParameters() (protocol.GenesisParameters, error)
	Network() (address.Network, error)
	Epoch() (uint64, error)
	LastBlockSlot() (uint64, error)
	UTxOs(addr address.Address) ([]tx.UTxO, error)
	SubmitTx(cborBytes []byte) (hash.TransactionId, error)
	EvaluateTx(cborBytes []byte) (map[plutus.RedeemerKey]plutus.ExecutionUnits, error)
}
