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


// Package textual builds channel pipelines around string converters.
//
// Items are carriers (carrier.Wire for UTF-8 on the wire, carrier.Native for
// the internal encoding). A Processor keeps the carrier type, a Transcoder
// changes it; Marshal and Unmarshal are the transcoders backed by a
// stringconv converter. Per-item failures travel as data on the carrier,
// panics are collected in a PanicStore carried by the context.
//
//	ctx, ps := textual.WithPanicStore(ctx)
//	in := textual.Scan(ctx, os.Stdin, nil, carrier.NativeOf[byte])
//	stage := textual.StickLeft(
//	    textual.Parallel(4, textual.Marshal[byte](conv)),
//	    textual.Ordered[carrier.Wire](),
//	)
//	for w := range stage.Apply(ctx, in) {
//	    os.Stdout.Write(w.Value)
//	}
package textual
