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
)

// Processor is a stage that keeps the carrier type: S -> S.
//
// Apply must return quickly, after starting its goroutines. The returned
// channel is non-nil and closed when the stage is done or ctx is canceled.
// A stage never closes its input channel.
type Processor[S carrier.Carrier[S]] interface {
	Apply(ctx context.Context, in <-chan S) <-chan S
}

// ProcessorFunc adapts a function to Processor. A panic while starting the
// stage, or a nil output channel, is recorded in the context's PanicStore and
// yields a closed channel.
type ProcessorFunc[S carrier.Carrier[S]] func(ctx context.Context, in <-chan S) <-chan S

func (f ProcessorFunc[S]) Apply(ctx context.Context, in <-chan S) <-chan S {
	return safeApply[S, S](ctx, f, in)
}

// Chain runs processors one after the other. Nil processors are skipped and
// an empty chain passes its input through.
type Chain[S carrier.Carrier[S]] struct {
	processors []Processor[S]
}

func NewChain[S carrier.Carrier[S]](processors ...Processor[S]) *Chain[S] {
	return &Chain[S]{processors: processors}
}

func (c *Chain[S]) Apply(ctx context.Context, in <-chan S) <-chan S {
	out := in
	for _, p := range c.processors {
		if p == nil {
			continue
		}
		out = p.Apply(ctx, out)
	}
	return out
}
