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

package plutus

import (
	plutigodata "github.com/blinklabs-io/plutigo/data"

	"github.com/go-cardano/cardanotx/apollerr"
)

// ToPlutigo converts d into blinklabs-io/plutigo's data.PlutusData, the
// shape downstream script-evaluation tooling expects its datums and
// redeemers in. Map is not convertible: plutigo's public constructors
// (NewConstr/NewList/NewInteger/NewByteString) have no documented
// arbitrary-key map builder, so round-tripping one here would mean
// guessing at an unconfirmed API shape rather than using it.
func (d Data) ToPlutigo() (plutigodata.PlutusData, error) {
	switch d.Kind {
	case KindConstr:
		fields := make([]plutigodata.PlutusData, len(d.Fields))
		for i, f := range d.Fields {
			pd, err := f.ToPlutigo()
			if err != nil {
				return nil, err
			}
			fields[i] = pd
		}
		return plutigodata.NewConstr(d.ConstrTag, fields...), nil
	case KindList:
		items := make([]plutigodata.PlutusData, len(d.Fields))
		for i, f := range d.Fields {
			pd, err := f.ToPlutigo()
			if err != nil {
				return nil, err
			}
			items[i] = pd
		}
		return plutigodata.NewList(items...), nil
	case KindInteger:
		return plutigodata.NewInteger(d.Int), nil
	case KindByteString:
		return plutigodata.NewByteString(d.Bytes), nil
	case KindMap:
		return nil, apollerr.InvalidArgument("plutus data: map kind has no supported plutigo bridge")
	default:
		return nil, apollerr.InvalidArgument("plutus data: unknown kind %d", d.Kind)
	}
}
