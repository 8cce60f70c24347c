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

// closedChan returns a channel that is already closed. It stands in for the
// output of a stage that panicked or broke its contract.
func closedChan[T any]() <-chan T {
	ch := make(chan T)
	close(ch)
	return ch
}

// safeApply starts a stage, recording a panic or a nil output channel in the
// store carried by ctx. In both cases the returned channel is closed.
func safeApply[T1, T2 any](ctx context.Context, start func(ctx context.Context, in <-chan T1) <-chan T2, in <-chan T1) (out <-chan T2) {
	ctx, ps := EnsurePanicStore(ctx)
	defer func() {
		if r := recover(); r != nil {
			ps.Store(r, debug.Stack())
			out = closedChan[T2]()
		}
	}()

	out = start(ctx, in)
	if out == nil {
		ps.Store("textual: stage returned a nil channel", debug.Stack())
		out = closedChan[T2]()
	}
	return out
}
