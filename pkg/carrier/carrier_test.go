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

package carrier

import (
	"errors"
	"testing"
)

var (
	_ Carrier[Wire]         = Wire{}
	_ Carrier[Native[byte]] = Native[byte]{}
	_ Carrier[Native[rune]] = Native[rune]{}
)

func TestWire_WithMethodsReturnCopies(t *testing.T) {
	w := WireFrom("héllo")
	w2 := w.WithIndex(3)

	if w.GetIndex() != 0 {
		t.Fatalf("original index changed: %d", w.GetIndex())
	}
	if w2.GetIndex() != 3 {
		t.Fatalf("unexpected index: got %d want 3", w2.GetIndex())
	}
	if got, want := w2.String(), "héllo"; got != want {
		t.Fatalf("unexpected value: got %q want %q", got, want)
	}
	if got, want := w2.Len(), 6; got != want {
		t.Fatalf("unexpected len: got %d want %d", got, want)
	}
}

func TestWire_WithErrorJoins(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")

	w := WireOf(nil).WithError(nil)
	if w.GetError() != nil {
		t.Fatalf("nil error must not be attached, got %v", w.GetError())
	}

	w = w.WithError(errA)
	if w.GetError() != errA {
		t.Fatalf("first error must be kept as is, got %v", w.GetError())
	}

	w = w.WithError(errB)
	if !errors.Is(w.GetError(), errA) || !errors.Is(w.GetError(), errB) {
		t.Fatalf("expected both errors to be carried, got %v", w.GetError())
	}
}

func TestNative_Basics(t *testing.T) {
	n := NativeOf([]rune("日本")).WithIndex(7)
	if n.Len() != 2 {
		t.Fatalf("unexpected len: got %d want 2", n.Len())
	}
	if n.GetIndex() != 7 {
		t.Fatalf("unexpected index: got %d want 7", n.GetIndex())
	}

	boom := errors.New("boom")
	n = n.WithError(boom).WithError(nil)
	if !errors.Is(n.GetError(), boom) {
		t.Fatalf("expected boom, got %v", n.GetError())
	}
}
