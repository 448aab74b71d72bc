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

// Package address implements the Cardano address model (component E):
// Shelley addresses (header byte + payment/staking credential parts,
// bech32-encoded) and Byron addresses (tagged CBOR + CRC32, base58
// encoded, decode-only per spec §9).
package address

// Network identifies which Cardano network an address belongs to.
type Network int

const (
	Testnet Network = 0
	Mainnet Network = 1
)

func (n Network) String() string {
	if n == Mainnet {
		return "mainnet"
	}
	return "testnet"
}

// byronTestnetMagic is the Byron protocol-magic attribute value that, per
// original_source/pycardano/address.py, flips a decoded Byron address's
// network to Testnet; its absence (no attribute key 2) means Mainnet.
const byronTestnetMagic = 1097911063
