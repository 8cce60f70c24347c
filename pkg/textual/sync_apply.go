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
	"errors"
	"fmt"

	"github.com/benoit-pereira-da-silva/wireconv/pkg/carrier"
)

// ErrNoOutput is returned by SyncTranscode when the stage emitted nothing.
var ErrNoOutput = errors.New("textual: stage produced no output")

// SyncTranscode runs a single item through t and returns the first output.
// Further outputs are drained and dropped. Processors are accepted too, since
// every Processor[S] is a Transcoder[S, S].
//
// A panic inside the stage is returned as an error. Per-item errors stay on
// the returned carrier.
func SyncTranscode[S1 carrier.Carrier[S1], S2 carrier.Carrier[S2]](ctx context.Context, t Transcoder[S1, S2], item S1) (S2, error) {
	var zero S2
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, ps := WithPanicStore(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	in := make(chan S1, 1)
	in <- item
	close(in)

	var (
		res S2
		got bool
	)
	for v := range t.Apply(ctx, in) {
		if !got {
			res, got = v, true
		}
	}
	if info, ok := ps.Load(); ok {
		return zero, fmt.Errorf("textual: stage panicked: %v", info.Value)
	}
	if !got {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		return zero, ErrNoOutput
	}
	return res, nil
}
