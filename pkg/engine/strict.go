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
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf16"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// x/text decoders replace malformed input with U+FFFD. The transformers below
// turn that into a hard ErrMalformed.

// utf16Validator passes UTF-16 through unchanged and fails on unpaired
// surrogates.
type utf16Validator struct {
	transform.NopResetter
	order binary.ByteOrder
}

func (v utf16Validator) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if len(src)-nSrc < 2 {
			return nDst, nSrc, shortSrc(atEOF)
		}
		u := v.order.Uint16(src[nSrc:])
		n := 2
		switch {
		case u >= 0xDC00 && u <= 0xDFFF:
			return nDst, nSrc, fmt.Errorf("%w: unpaired low surrogate 0x%04X", ErrMalformed, u)
		case utf16.IsSurrogate(rune(u)):
			if len(src)-nSrc < 4 {
				return nDst, nSrc, shortSrc(atEOF)
			}
			if low := v.order.Uint16(src[nSrc+2:]); low < 0xDC00 || low > 0xDFFF {
				return nDst, nSrc, fmt.Errorf("%w: unpaired high surrogate 0x%04X", ErrMalformed, u)
			}
			n = 4
		}
		if len(dst)-nDst < n {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+n])
		nSrc += n
	}
	return nDst, nSrc, nil
}

// utf32Validator passes UTF-32 through unchanged and fails on surrogates and
// values above U+10FFFF.
type utf32Validator struct {
	transform.NopResetter
	order binary.ByteOrder
}

func (v utf32Validator) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if len(src)-nSrc < 4 {
			return nDst, nSrc, shortSrc(atEOF)
		}
		u := v.order.Uint32(src[nSrc:])
		if u > 0x10FFFF || (u >= 0xD800 && u <= 0xDFFF) {
			return nDst, nSrc, fmt.Errorf("%w: invalid code point 0x%X", ErrMalformed, u)
		}
		if len(dst)-nDst < 4 {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+4])
		nSrc += 4
	}
	return nDst, nSrc, nil
}

var replacement = []byte("\uFFFD")

// replacementGuard follows the decoder of an encoding that cannot represent
// U+FFFD: any U+FFFD in its output stands for malformed input.
type replacementGuard struct{ transform.NopResetter }

func (replacementGuard) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	chunk := src
	found := bytes.Index(src, replacement)
	switch {
	case found >= 0:
		chunk = src[:found]
	case !atEOF:
		// Hold back a tail that may be the start of a replacement.
		for k := len(replacement) - 1; k > 0; k-- {
			if bytes.HasSuffix(src, replacement[:k]) {
				chunk = src[:len(src)-k]
				break
			}
		}
	}
	n := copy(dst, chunk)
	switch {
	case n < len(chunk):
		return n, n, transform.ErrShortDst
	case found >= 0:
		return n, n, fmt.Errorf("%w: byte sequence has no mapping", ErrMalformed)
	case n < len(src):
		return n, n, transform.ErrShortSrc
	}
	return n, n, nil
}

func shortSrc(atEOF bool) error {
	if atEOF {
		return ErrIncomplete
	}
	return transform.ErrShortSrc
}

// encodesReplacement reports whether U+FFFD can legitimately come out of
// enc's decoder.
func encodesReplacement(enc encoding.Encoding) bool {
	_, err := enc.NewEncoder().String("\uFFFD")
	return err == nil
}
