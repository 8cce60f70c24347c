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
	"bytes"
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/benoit-pereira-da-silva/wireconv/pkg/carrier"
)

// upper upper-cases ASCII letters of wire items.
func upper() ProcessorFunc[carrier.Wire] {
	return func(ctx context.Context, in <-chan carrier.Wire) <-chan carrier.Wire {
		return Async(ctx, in, func(w carrier.Wire) carrier.Wire {
			w.Value = bytes.ToUpper(w.Value)
			return w
		})
	}
}

// suffix appends s to wire items.
func suffix(s string) ProcessorFunc[carrier.Wire] {
	return func(ctx context.Context, in <-chan carrier.Wire) <-chan carrier.Wire {
		return Async(ctx, in, func(w carrier.Wire) carrier.Wire {
			w.Value = append(bytes.Clone(w.Value), s...)
			return w
		})
	}
}

func values(items []carrier.Wire) []string {
	out := make([]string, len(items))
	for i, w := range items {
		out[i] = w.String()
	}
	return out
}

func TestChain_AppliesInOrderAndSkipsNil(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	chain := NewChain[carrier.Wire](suffix("-a"), nil, upper(), suffix("-b"))
	items, err := collectWithContext(ctx, chain.Apply(ctx, feed(carrier.WireFrom("x"), carrier.WireFrom("y"))))
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	if want := []string{"X-A-b", "Y-A-b"}; !reflect.DeepEqual(values(items), want) {
		t.Fatalf("unexpected output: got %#v want %#v", values(items), want)
	}
}

func TestChain_EmptyPassesThrough(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	items, err := collectWithContext(ctx, NewChain[carrier.Wire]().Apply(ctx, feed(carrier.WireFrom("same"))))
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	if want := []string{"same"}; !reflect.DeepEqual(values(items), want) {
		t.Fatalf("unexpected output: got %#v want %#v", values(items), want)
	}
}

func TestProcessorFunc_ContractViolations(t *testing.T) {
	cases := map[string]ProcessorFunc[carrier.Wire]{
		"nil channel": func(ctx context.Context, in <-chan carrier.Wire) <-chan carrier.Wire {
			return nil
		},
		"panic on start": func(ctx context.Context, in <-chan carrier.Wire) <-chan carrier.Wire {
			panic("cannot start")
		},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			base, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			ctx, ps := WithPanicStore(base)

			items, err := collectWithContext(base, p.Apply(ctx, feed(carrier.WireFrom("x"))))
			if err != nil {
				t.Fatalf("collect failed: %v", err)
			}
			if len(items) != 0 {
				t.Fatalf("expected a closed channel, got %#v", items)
			}
			if _, ok := ps.Load(); !ok {
				t.Fatalf("expected the violation to be recorded")
			}
		})
	}
}

func TestGlue_StickLeftAndRight(t *testing.T) {
	conv := newLatin1(t)

	// upper-case the wire form, then convert to Latin-1.
	right := StickRight[carrier.Wire, carrier.Native[byte]](upper(), Unmarshal[byte](conv))
	native, err := SyncTranscode(context.Background(), right, carrier.WireFrom("é-e"))
	if err != nil {
		t.Fatalf("sync transcode failed: %v", err)
	}
	// bytes.ToUpper is Unicode aware: é becomes É (0xC9 in Latin-1).
	if want := []byte{0xC9, '-', 'E'}; !bytes.Equal(native.Value, want) {
		t.Fatalf("unexpected value: got %x want %x", native.Value, want)
	}

	// convert to UTF-8, then suffix.
	left := StickLeft[carrier.Native[byte], carrier.Wire](Marshal[byte](conv), suffix("!"))
	wire, err := SyncTranscode(context.Background(), left, native)
	if err != nil {
		t.Fatalf("sync transcode failed: %v", err)
	}
	if got, want := wire.String(), "É-E!"; got != want {
		t.Fatalf("unexpected wire: got %q want %q", got, want)
	}

	if StickLeft[carrier.Native[byte], carrier.Wire](nil, suffix("!")) != nil {
		t.Fatalf("nil transcoder must give nil")
	}
	var unmarshal Transcoder[carrier.Wire, carrier.Native[byte]] = Unmarshal[byte](conv)
	if got := StickRight[carrier.Wire, carrier.Native[byte]](nil, unmarshal); got == nil {
		t.Fatalf("nil processor must return the transcoder")
	}
}
