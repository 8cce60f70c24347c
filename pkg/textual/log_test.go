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
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/benoit-pereira-da-silva/wireconv/pkg/carrier"
)

func TestLog_PassesThroughAndLogs(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	core, logs := observer.New(zapcore.DebugLevel)
	stage := Log[carrier.Wire](zap.New(core), "wire")

	failed := errors.New("bad item")
	in := feed(
		carrier.WireFrom("ok").WithIndex(0),
		carrier.WireFrom("ko").WithIndex(1).WithError(failed),
	)
	items, err := collectWithContext(ctx, stage.Apply(ctx, in))
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	if len(items) != 2 || items[0].String() != "ok" || !errors.Is(items[1].GetError(), failed) {
		t.Fatalf("items must pass through unchanged, got %+v", items)
	}

	entries := logs.AllUntimed()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	if entries[0].Level != zapcore.DebugLevel || entries[0].Message != "wire" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if got := entries[0].ContextMap()["value"]; got != "ok" {
		t.Fatalf("unexpected logged value: %v", got)
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Fatalf("errored items must be logged at warn level, got %v", entries[1].Level)
	}
	if got := entries[1].ContextMap()["error"]; got != "bad item" {
		t.Fatalf("unexpected logged error: %v", got)
	}
}

func TestLog_NilLogger(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	items, err := collectWithContext(ctx, Log[carrier.Native[byte]](nil, "native").Apply(ctx, feed(carrier.NativeOf([]byte("x")))))
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected the item back, got %+v", items)
	}
}
