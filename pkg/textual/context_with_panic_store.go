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
)

// PanicInfo describes a recovered panic: the value given to panic and a stack
// trace taken where it was recovered.
type PanicInfo struct {
	Value any
	Stack []byte
}

// PanicStore holds the first panic recovered by the stages of a pipeline.
//
// Stages run in goroutines and have no error return, so unexpected panics are
// reported out of band through the store carried by the context. Store is
// write-once; Load may run concurrently with Store and returns a copy.
// A nil *PanicStore is valid and ignores everything.
type PanicStore struct {
	once sync.Once
	mu   sync.Mutex
	info PanicInfo
	set  bool
}

// Store records value and a copy of stack unless a panic was already stored.
func (ps *PanicStore) Store(value any, stack []byte) {
	if ps == nil {
		return
	}
	ps.once.Do(func() {
		ps.mu.Lock()
		ps.info = PanicInfo{Value: value, Stack: cloneStack(stack)}
		ps.set = true
		ps.mu.Unlock()
	})
}

// Load returns the stored panic, if any.
func (ps *PanicStore) Load() (PanicInfo, bool) {
	if ps == nil {
		return PanicInfo{}, false
	}
	ps.mu.Lock()
	info, ok := ps.info, ps.set
	ps.mu.Unlock()
	if !ok {
		return PanicInfo{}, false
	}
	info.Stack = cloneStack(info.Stack)
	return info, true
}

func cloneStack(stack []byte) []byte {
	if len(stack) == 0 {
		return nil
	}
	return append([]byte(nil), stack...)
}

type panicStoreKey struct{}

// WithPanicStore returns a context carrying a new PanicStore, and the store.
// A nil parent is replaced by context.Background().
func WithPanicStore(parent context.Context) (context.Context, *PanicStore) {
	if parent == nil {
		parent = context.Background()
	}
	ps := &PanicStore{}
	return context.WithValue(parent, panicStoreKey{}, ps), ps
}

// PanicStoreFromContext returns the store carried by ctx, or nil.
func PanicStoreFromContext(ctx context.Context) *PanicStore {
	if ctx == nil {
		return nil
	}
	ps, _ := ctx.Value(panicStoreKey{}).(*PanicStore)
	return ps
}

// EnsurePanicStore returns ctx and its store, attaching a new store first if
// ctx has none. A nil ctx is replaced by context.Background().
func EnsurePanicStore(ctx context.Context) (context.Context, *PanicStore) {
	if ps := PanicStoreFromContext(ctx); ps != nil {
		return ctx, ps
	}
	return WithPanicStore(ctx)
}
