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
	"runtime/debug"
)

// Async starts a single-worker 1:1 map stage: every value read from in is
// passed to f and the result is sent on the returned channel.
//
// Streaming contract:
//
//   - Async never closes in; it closes the returned channel once, when done.
//   - The worker exits when ctx is done, when in is closed, or when f panics.
//   - Receives and sends both select on ctx.Done(), so a consumer that stops
//     early only has to cancel ctx for the worker to exit.
//   - The output channel is unbuffered: a slow consumer slows the stage.
//
// A panic in f is recovered and recorded in the PanicStore carried by ctx
// (see WithPanicStore); the stage then stops. When ctx has no store Async
// attaches a private one so the recovery is never skipped, but that store is
// not visible to the caller. Attach a store at the pipeline boundary and
// check it once the output is drained:
//
//	ctx, ps := WithPanicStore(ctx)
//	for w := range Marshal(conv).Apply(ctx, in) {
//	    _ = w
//	}
//	if info, ok := ps.Load(); ok {
//	    return fmt.Errorf("pipeline panic: %v", info.Value)
//	}
//
// f does not receive ctx. Capture it in the closure when the mapping needs it.
func Async[T1 any, T2 any](ctx context.Context, in <-chan T1, f func(t T1) T2) <-chan T2 {
	ctx, _ = EnsurePanicStore(ctx)
	ctx, cancel := context.WithCancel(ctx)

	out := make(chan T2)
	go func() {
		defer close(out)
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				PanicStoreFromContext(ctx).Store(r, debug.Stack())
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case s, ok := <-in:
				if !ok {
					return
				}
				res := f(s)
				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
			}
		}
	}()
	return out
}
