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
	"encoding/binary"
	"fmt"
	"runtime"
	"strings"
	"unicode/utf8"

	"golang.org/x/sys/cpu"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// charset is a resolved encoding name.
type charset struct {
	name string
	enc  encoding.Encoding
	utf8 bool
	// strict, when set, validates input ahead of enc's decoder.
	strict func() transform.Transformer
}

// builtin holds the names x/text indexes either lack or resolve with BOM
// handling, which is wrong for in-memory strings.
var builtin = map[string]func() charset{
	"UTF-8": utf8Charset,
	"UTF8":  utf8Charset,

	"UTF-16":   nativeUTF16,
	"UTF16":    nativeUTF16,
	"UCS-2":    nativeUTF16,
	"UCS2":     nativeUTF16,
	"UTF-16LE": func() charset { return utf16Charset("UTF-16LE", unicode.LittleEndian) },
	"UTF16LE":  func() charset { return utf16Charset("UTF-16LE", unicode.LittleEndian) },
	"UCS-2LE":  func() charset { return utf16Charset("UTF-16LE", unicode.LittleEndian) },
	"UTF-16BE": func() charset { return utf16Charset("UTF-16BE", unicode.BigEndian) },
	"UTF16BE":  func() charset { return utf16Charset("UTF-16BE", unicode.BigEndian) },
	"UCS-2BE":  func() charset { return utf16Charset("UTF-16BE", unicode.BigEndian) },

	"UTF-32":   nativeUTF32,
	"UTF32":    nativeUTF32,
	"UCS-4":    nativeUTF32,
	"UCS4":     nativeUTF32,
	"UTF-32LE": func() charset { return utf32Charset("UTF-32LE", utf32.LittleEndian) },
	"UTF32LE":  func() charset { return utf32Charset("UTF-32LE", utf32.LittleEndian) },
	"UCS-4LE":  func() charset { return utf32Charset("UTF-32LE", utf32.LittleEndian) },
	"UTF-32BE": func() charset { return utf32Charset("UTF-32BE", utf32.BigEndian) },
	"UTF32BE":  func() charset { return utf32Charset("UTF-32BE", utf32.BigEndian) },
	"UCS-4BE":  func() charset { return utf32Charset("UTF-32BE", utf32.BigEndian) },

	"WCHAR_T": wcharCharset,

	"US-ASCII":       asciiCharset,
	"ASCII":          asciiCharset,
	"ANSI_X3.4-1968": asciiCharset,
	"ISO646-US":      asciiCharset,
	"646":            asciiCharset,
}

func normalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func utf8Charset() charset {
	return charset{name: UTF8, enc: unicode.UTF8, utf8: true}
}

func utf16Charset(name string, order unicode.Endianness) charset {
	var bo binary.ByteOrder = binary.LittleEndian
	if order == unicode.BigEndian {
		bo = binary.BigEndian
	}
	return charset{
		name:   name,
		enc:    unicode.UTF16(order, unicode.IgnoreBOM),
		strict: func() transform.Transformer { return utf16Validator{order: bo} },
	}
}

func utf32Charset(name string, order utf32.Endianness) charset {
	var bo binary.ByteOrder = binary.LittleEndian
	if order == utf32.BigEndian {
		bo = binary.BigEndian
	}
	return charset{
		name:   name,
		enc:    utf32.UTF32(order, utf32.IgnoreBOM),
		strict: func() transform.Transformer { return utf32Validator{order: bo} },
	}
}

// nativeUTF16 follows the host byte order so that []uint16 values can be
// handed to the engine as raw memory.
func nativeUTF16() charset {
	if cpu.IsBigEndian {
		return utf16Charset("UTF-16BE", unicode.BigEndian)
	}
	return utf16Charset("UTF-16LE", unicode.LittleEndian)
}

func nativeUTF32() charset {
	if cpu.IsBigEndian {
		return utf32Charset("UTF-32BE", utf32.BigEndian)
	}
	return utf32Charset("UTF-32LE", utf32.LittleEndian)
}

// wchar_t is 16 bits wide on Windows and 32 bits elsewhere.
func wcharCharset() charset {
	if runtime.GOOS == "windows" {
		return nativeUTF16()
	}
	return nativeUTF32()
}

func asciiCharset() charset {
	return charset{name: "US-ASCII", enc: asciiEncoding{}}
}

// asciiEncoding is strict 7-bit US-ASCII in both directions. x/text ships no
// ASCII encoding, and the windows-1252 superset would accept bytes the C
// locale rejects.
type asciiEncoding struct{}

func (asciiEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: asciiTransformer{}}
}

func (asciiEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: asciiTransformer{}}
}

type asciiTransformer struct{ transform.NopResetter }

func (asciiTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c >= utf8.RuneSelf {
			return nDst, nSrc, NonASCIIError(c)
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = c
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}

// NonASCIIError reports a byte outside the 7-bit range met by the US-ASCII
// converter.
type NonASCIIError byte

func (e NonASCIIError) Error() string {
	return fmt.Sprintf("engine: byte 0x%02x is not valid US-ASCII", byte(e))
}
