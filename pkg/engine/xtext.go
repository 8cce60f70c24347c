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

package engine

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// ErrIncomplete is returned when the input ends in the middle of a multi-byte
// sequence.
var ErrIncomplete = errors.New("engine: incomplete multi-byte sequence")

// ErrMalformed is returned for input that is not valid in its encoding.
var ErrMalformed = errors.New("engine: malformed input")

// Default is the engine used when none is configured.
var Default = NewXText()

// XText is an Engine backed by golang.org/x/text.
//
// Names are matched case-insensitively, in this order:
//
//   - encodings added with Register,
//   - a built-in table (UTF-8, UTF-16/UTF-32 and their UCS aliases in
//     native, little or big endian order without BOM, WCHAR_T, US-ASCII),
//   - the IANA and MIME indexes,
//   - the WHATWG (HTML) index.
//
// UTF-8 input is always validated: malformed or truncated sequences fail with
// encoding.ErrInvalidUTF8 instead of being replaced. Other input fails with
// ErrMalformed: UTF-16 and UTF-32 on unpaired surrogates or values above
// U+10FFFF, and any encoding that cannot represent U+FFFD wherever its
// decoder had to substitute one. Encodings that can represent U+FFFD (such
// as GB18030) keep the decoder's substitution.
//
// XText is safe for concurrent use. The Sessions it opens are not.
type XText struct {
	mu     sync.RWMutex
	custom map[string]encoding.Encoding
}

// NewXText returns an XText engine with no custom encodings.
func NewXText() *XText {
	return &XText{}
}

// Register makes enc available under name, shadowing any built-in or indexed
// encoding with the same name.
func (x *XText) Register(name string, enc encoding.Encoding) {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.custom == nil {
		x.custom = make(map[string]encoding.Encoding)
	}
	x.custom[normalizeName(name)] = enc
}

// Lookup resolves name to an x/text encoding.
func (x *XText) Lookup(name string) (encoding.Encoding, error) {
	cs, err := x.resolve(name)
	if err != nil {
		return nil, err
	}
	return cs.enc, nil
}

func (x *XText) resolve(name string) (charset, error) {
	key := normalizeName(name)
	if key == "" {
		return charset{}, fmt.Errorf("%w: empty encoding name", ErrUnsupported)
	}

	x.mu.RLock()
	enc, ok := x.custom[key]
	x.mu.RUnlock()
	if ok {
		return charset{name: key, enc: enc}, nil
	}

	if mk, ok := builtin[key]; ok {
		return mk(), nil
	}

	for _, index := range []*ianaindex.Index{ianaindex.IANA, ianaindex.MIME} {
		enc, err := index.Encoding(key)
		if err != nil || enc == nil {
			continue
		}
		canonical, err := index.Name(enc)
		if err != nil {
			canonical = key
		}
		if canonical == UTF8 {
			return utf8Charset(), nil
		}
		return charset{name: canonical, enc: enc}, nil
	}

	if enc, err := htmlindex.Get(key); err == nil && enc != nil {
		canonical, err := htmlindex.Name(enc)
		if err != nil {
			canonical = key
		}
		if normalizeName(canonical) == UTF8 {
			return utf8Charset(), nil
		}
		return charset{name: canonical, enc: enc}, nil
	}

	return charset{}, fmt.Errorf("%w: unknown encoding %q", ErrUnsupported, name)
}

// Open returns a Session converting from one named encoding to another.
func (x *XText) Open(from, to string) (Session, error) {
	src, err := x.resolve(from)
	if err != nil {
		return nil, err
	}
	dst, err := x.resolve(to)
	if err != nil {
		return nil, err
	}

	var stages []transform.Transformer
	if src.utf8 {
		stages = append(stages, encoding.UTF8Validator)
	} else {
		if src.strict != nil {
			stages = append(stages, src.strict())
		}
		stages = append(stages, src.enc.NewDecoder())
		if !encodesReplacement(src.enc) {
			stages = append(stages, replacementGuard{})
		}
	}
	if !dst.utf8 {
		stages = append(stages, dst.enc.NewEncoder())
	}

	t := stages[0]
	if len(stages) > 1 {
		t = transform.Chain(stages...)
	}
	return &xtextSession{t: t, from: src.name, to: dst.name}, nil
}

type xtextSession struct {
	t        transform.Transformer
	from, to string
	closed   bool
}

func (s *xtextSession) Convert(dst, src []byte) (int, int, error) {
	if s.closed {
		return 0, 0, ErrClosed
	}
	nDst, nSrc, err := s.t.Transform(dst, src, true)
	switch {
	case err == nil:
	case errors.Is(err, transform.ErrShortDst):
		err = ErrShortDst
	case errors.Is(err, transform.ErrShortSrc):
		err = ErrIncomplete
	default:
		err = fmt.Errorf("%s to %s: %w", s.from, s.to, err)
	}
	return nDst, nSrc, err
}

func (s *xtextSession) Reset() {
	if !s.closed {
		s.t.Reset()
	}
}

func (s *xtextSession) Close() error {
	s.closed = true
	s.t = nil
	return nil
}

func (s *xtextSession) String() string {
	return s.from + " -> " + s.to
}
