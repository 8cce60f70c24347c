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
	"errors"
	"strings"
)

// Kind categorizes a conversion failure.
type Kind string

const (
	// KindEncodingUnsupported: the engine cannot convert to or from the
	// internal encoding. Raised by New.
	KindEncodingUnsupported Kind = "encoding_unsupported"

	// KindSessionCreationFailed: a session pair could not be opened for a
	// call although the encoding was validated.
	KindSessionCreationFailed Kind = "session_creation_failed"

	// KindIllegalConversion: malformed input, a character with no
	// representation in the target encoding, or any other engine failure.
	KindIllegalConversion Kind = "illegal_conversion"
)

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrEncodingUnsupported   = &Error{Kind: KindEncodingUnsupported}
	ErrSessionCreationFailed = &Error{Kind: KindSessionCreationFailed}
	ErrIllegalConversion     = &Error{Kind: KindIllegalConversion}
)

// unknownError is the detail used when the engine gives no text.
const unknownError = "Unknown error"

var (
	errPartialInput = errors.New("input was not fully consumed")
	errPartialChar  = errors.New("output ends inside a character")
)

// Error is the error type returned by this package.
type Error struct {
	Kind     Kind
	Encoding string // internal encoding of the converter
	Detail   string
	Cause    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("stringconv: ")
	b.WriteString(string(e.Kind))
	if e.Encoding != "" {
		b.WriteString(" [")
		b.WriteString(e.Encoding)
		b.WriteByte(']')
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil && e.Cause.Error() != e.Detail {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}
	return b.String()
}

// Unwrap returns the engine error, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

func newError(kind Kind, encoding string, cause error) *Error {
	detail := unknownError
	if cause != nil && cause.Error() != "" {
		detail = cause.Error()
	}
	return &Error{Kind: kind, Encoding: encoding, Detail: detail, Cause: cause}
}
