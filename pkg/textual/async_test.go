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
	"fmt"
	"reflect"
	"testing"
	"time"
)

func TestAsync_MapsValuesAndClosesOutput(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	out := Async(ctx, feed(1, 2, 3), func(v int) int { return v * 2 })

	items, err := collectWithContext(ctx, out)
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	if want := []int{2, 4, 6}; !reflect.DeepEqual(items, want) {
		t.Fatalf("unexpected output: got %#v want %#v", items, want)
	}
}

func TestAsync_StopsOnContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Nothing is ever sent on in and it is never closed: only cancellation
	// can stop the worker.
	in := make(chan int)
	out := Async(ctx, in, func(v int) int { return v })
	cancel()

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer waitCancel()

	items, err := collectWithContext(waitCtx, out)
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no output values, got %#v", items)
	}
}

func TestAsync_RecoversPanicIntoContextStore(t *testing.T) {
	baseCtx, baseCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer baseCancel()

	ctx, ps := WithPanicStore(baseCtx)
	out := Async(ctx, feed(1, 2), func(v int) int {
		if v == 2 {
			panic("boom")
		}
		return v
	})

	items, err := collectWithContext(baseCtx, out)
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	if want := []int{1}; !reflect.DeepEqual(items, want) {
		t.Fatalf("expected values before the panic only, got %#v", items)
	}

	info, ok := ps.Load()
	if !ok {
		t.Fatalf("expected PanicStore to contain panic info")
	}
	if got, want := info.Value, "boom"; got != want {
		t.Fatalf("unexpected panic value: got %#v want %#v", got, want)
	}
	if len(info.Stack) == 0 {
		t.Fatalf("expected non-empty stack trace")
	}
}

func TestAsync_NilContext(t *testing.T) {
	out := Async(nil, feed("a"), func(v string) string { return v + v })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	items, err := collectWithContext(ctx, out)
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	if want := []string{"aa"}; !reflect.DeepEqual(items, want) {
		t.Fatalf("unexpected output: got %#v want %#v", items, want)
	}
}

func ExampleAsync_withPanicStore() {
	ctx, ps := WithPanicStore(context.Background())

	out := Async(ctx, feed(1), func(v int) int {
		panic("boom")
	})
	for range out {
	}

	info, ok := ps.Load()
	fmt.Println(ok, info.Value)
	// Output: true boom
}
