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

// Package engine defines the character-set conversion engine used by
// stringconv, and ships a default implementation built on golang.org/x/text.
//
// An Engine opens Sessions for a (from, to) encoding pair. A Session is a
// stateful converter: it may carry shift state between Convert calls until it
// is Reset, and it must be closed when no longer needed.
package engine

import "errors"

// UTF8 is the canonical name of the wire encoding.
const UTF8 = "UTF-8"

var (
	// ErrShortDst is returned by Session.Convert when dst is full before src
	// was consumed. Progress reported alongside it is valid: the caller retries
	// with the remaining input and a fresh output window.
	ErrShortDst = errors.New("engine: output buffer too small")

	// ErrUnsupported is returned by Engine.Open when an encoding name is
	// unknown or the pair cannot be converted.
	ErrUnsupported = errors.New("engine: conversion not supported")

	// ErrClosed is returned by Session.Convert after Close.
	ErrClosed = errors.New("engine: session closed")
)

// Engine opens conversion sessions between two named encodings.
type Engine interface {
	Open(from, to string) (Session, error)
}

// Session converts bytes from one encoding to another.
//
// Convert treats src as the complete remaining input. It returns the number of
// bytes written to dst and consumed from src. err is nil when all of src was
// converted, ErrShortDst when dst ran out of room, or any other error for
// malformed or unrepresentable input.
//
// A Session is not safe for concurrent use.
type Session interface {
	Convert(dst, src []byte) (nDst, nSrc int, err error)

	// Reset clears any shift state so the next Convert starts a new sequence.
	Reset()

	Close() error
}

// EngineFunc adapts a plain function to Engine.
type EngineFunc func(from, to string) (Session, error)

// Open calls f(from, to).
func (f EngineFunc) Open(from, to string) (Session, error) {
	return f(from, to)
}
