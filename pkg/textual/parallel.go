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
	"sync"

	"github.com/benoit-pereira-da-silva/wireconv/pkg/carrier"
)

// Parallel runs workers instances of t side by side. Items are dealt to the
// instances in round-robin order and their outputs are merged as they come,
// so output order is not input order; follow with Ordered when it matters.
//
// t must be safe to apply several times concurrently, which holds for the
// stages returned by Marshal and Unmarshal. workers < 2 returns t itself.
//
// When an instance closes its output while input is still being dealt (for
// instance after a recovered panic), the whole stage is canceled and its
// output closes once the other instances have drained.
func Parallel[S1 carrier.Carrier[S1], S2 carrier.Carrier[S2]](workers int, t Transcoder[S1, S2]) Transcoder[S1, S2] {
	if workers < 2 {
		return t
	}
	return TranscoderFunc[S1, S2](func(ctx context.Context, in <-chan S1) <-chan S2 {
		ctx, cancel := context.WithCancel(ctx)

		ins := make([]chan S1, workers)
		outs := make([]<-chan S2, workers)
		for i := range ins {
			ins[i] = make(chan S1)
			outs[i] = t.Apply(ctx, ins[i])
		}

		// dealt is closed once the fan-out stops sending to ins.
		dealt := make(chan struct{})

		out := make(chan S2)
		var wg sync.WaitGroup
		wg.Add(len(outs))
		for _, ch := range outs {
			go func(ch <-chan S2) {
				defer wg.Done()
				defer func() {
					select {
					case <-dealt:
					default:
						// Stopped early: nothing would read its input again.
						cancel()
					}
				}()
				for item := range ch {
					select {
					case out <- item:
					case <-ctx.Done():
						// Keep draining so the worker can exit.
						for range ch {
						}
						return
					}
				}
			}(ch)
		}

		go func() {
			defer func() {
				close(dealt)
				for _, ch := range ins {
					close(ch)
				}
				wg.Wait()
				cancel()
				close(out)
			}()

			next := 0
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-in:
					if !ok {
						return
					}
					select {
					case <-ctx.Done():
						return
					case ins[next] <- item:
					}
					next = (next + 1) % workers
				}
			}
		}()
		return out
	})
}
