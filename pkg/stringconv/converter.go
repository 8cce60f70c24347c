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

package stringconv

import (
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benoit-pereira-da-silva/wireconv/pkg/engine"
	"github.com/benoit-pereira-da-silva/wireconv/pkg/locale"
)

// minIncrement is the smallest amount of output reserved per growth step.
// It covers the widest UTF-8 sequence.
const minIncrement = 4

// StringConverter is the contract protocol marshaling code depends on.
type StringConverter[C Char] interface {
	// ToUTF8 appends the UTF-8 form of src to buf and returns the offset
	// just past the last byte written.
	ToUTF8(src []C, buf UTF8Buffer) (end int, err error)

	// FromUTF8 appends the internal form of src to target.
	FromUTF8(src []byte, target []C) ([]C, error)
}

var (
	_ StringConverter[byte]   = (*Converter[byte])(nil)
	_ StringConverter[uint16] = (*Converter[uint16])(nil)
	_ StringConverter[rune]   = (*Converter[rune])(nil)
)

// Converter converts between an internal encoding and UTF-8.
// It is safe for concurrent use.
type Converter[C Char] struct {
	internal string
	engine   engine.Engine
	logger   *zap.Logger
	pool     sync.Pool
	closed   atomic.Bool
}

type options struct {
	engine engine.Engine
	logger *zap.Logger
}

// Option configures a Converter.
type Option func(*options)

// WithEngine sets the conversion engine. Defaults to engine.Default.
func WithEngine(e engine.Engine) Option {
	return func(o *options) {
		if e != nil {
			o.engine = e
		}
	}
}

// WithLogger sets the logger. Defaults to the package Logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New returns a converter for the internal encoding named internalCode.
//
// An empty name selects the default for the width of C: the codeset of the
// current locale for byte, UTF-16 for two-byte characters and UTF-32 for
// four-byte characters. The encoding is validated by opening and closing a
// session pair; if the engine cannot handle it, New fails with
// KindEncodingUnsupported and leaves nothing open.
func New[C Char](internalCode string, opts ...Option) (*Converter[C], error) {
	o := options{engine: engine.Default, logger: Logger()}
	for _, opt := range opts {
		opt(&o)
	}
	if internalCode == "" {
		internalCode = DefaultEncoding[C]()
	}
	c := &Converter[C]{
		internal: internalCode,
		engine:   o.engine,
		logger:   o.logger.With(zap.String("encoding", internalCode)),
	}
	s, err := c.openSessions()
	if err != nil {
		c.logger.Debug("encoding rejected", zap.Error(err))
		return nil, newError(KindEncodingUnsupported, internalCode, err)
	}
	if err := s.close(); err != nil {
		c.logger.Warn("closing trial session pair", zap.Error(err))
	}
	return c, nil
}

// NewNarrow returns a converter for byte strings. An empty name selects the
// locale codeset.
func NewNarrow(internalCode string, opts ...Option) (*Converter[byte], error) {
	return New[byte](internalCode, opts...)
}

// NewWide returns a converter for rune strings. An empty name selects UTF-32.
func NewWide(internalCode string, opts ...Option) (*Converter[rune], error) {
	return New[rune](internalCode, opts...)
}

// DefaultEncoding is the encoding New picks for C when given no name.
func DefaultEncoding[C Char]() string {
	switch charWidth[C]() {
	case 1:
		return locale.Codeset()
	case 2:
		return "UTF-16"
	default:
		return "UTF-32"
	}
}

// Encoding returns the internal encoding name.
func (c *Converter[C]) Encoding() string {
	return c.internal
}

// AppendUTF8 appends the UTF-8 form of src to dst. On error dst is returned
// unchanged.
func (c *Converter[C]) AppendUTF8(dst []byte, src []C) ([]byte, error) {
	buf := Buffer{buf: dst}
	end, err := c.ToUTF8(src, &buf)
	if err != nil {
		return dst, err
	}
	buf.Truncate(end)
	return buf.Bytes(), nil
}

// Decode returns the internal form of src in a new slice.
func (c *Converter[C]) Decode(src []byte) ([]C, error) {
	return c.FromUTF8(src, nil)
}

// Close closes every idle session pair the calling goroutine can reach in
// the pool. Pairs owned by calls in flight on other goroutines are closed
// when those calls return, and pairs the pool has already dropped are left
// to the cleanup hook that closes them once collected. The converter stays
// usable: later calls open a pair and close it on return. Close is
// idempotent.
func (c *Converter[C]) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	var err error
	n := 0
	for {
		p, ok := c.pool.Get().(*sessionPair)
		if !ok {
			break
		}
		err = multierr.Append(err, c.discard(p))
		n++
	}
	c.logger.Debug("converter closed", zap.Int("pairs", n), zap.Error(err))
	return err
}
