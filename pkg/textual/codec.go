// Copyright 2026 Benoit Pereira da Silva
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


package textual

import (
	"context"

	"github.com/benoit-pereira-da-silva/wireconv/pkg/carrier"
	"github.com/benoit-pereira-da-silva/wireconv/pkg/stringconv"
)

// Marshal returns a stage converting internal strings to their wire form.
//
// A conversion failure is attached to the output item, which then has an
// empty Value. Items that already carry an error are forwarded with their
// index and error but are not converted.
func Marshal[C stringconv.Char](conv stringconv.StringConverter[C]) TranscoderFunc[carrier.Native[C], carrier.Wire] {
	return func(ctx context.Context, in <-chan carrier.Native[C]) <-chan carrier.Wire {
		return Async(ctx, in, func(n carrier.Native[C]) carrier.Wire {
			w := carrier.Wire{Index: n.Index, Error: n.Error}
			if n.Error != nil {
				return w
			}
			var buf stringconv.Buffer
			end, err := conv.ToUTF8(n.Value, &buf)
			if err != nil {
				return w.WithError(err)
			}
			buf.Truncate(end)
			w.Value = buf.Bytes()
			return w
		})
	}
}

// Unmarshal returns a stage converting wire strings to the internal encoding,
// with the same error handling as Marshal.
func Unmarshal[C stringconv.Char](conv stringconv.StringConverter[C]) TranscoderFunc[carrier.Wire, carrier.Native[C]] {
	return func(ctx context.Context, in <-chan carrier.Wire) <-chan carrier.Native[C] {
		return Async(ctx, in, func(w carrier.Wire) carrier.Native[C] {
			n := carrier.Native[C]{Index: w.Index, Error: w.Error}
			if w.Error != nil {
				return n
			}
			v, err := conv.FromUTF8(w.Value, nil)
			if err != nil {
				return n.WithError(err)
			}
			n.Value = v
			return n
		})
	}
}
