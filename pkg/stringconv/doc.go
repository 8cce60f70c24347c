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

// Package stringconv converts strings between a process's internal character
// encoding and UTF-8, the encoding mandated on the wire.
//
// A Converter is bound to one internal encoding for its whole life. It is
// generic over the width of the internal character type:
//
//	narrow, _ := stringconv.New[byte]("ISO-8859-1")   // locale codeset
//	utf16, _ := stringconv.New[uint16]("UTF-16")      // native byte order
//	wide, _ := stringconv.New[rune]("WCHAR_T")        // UTF-32 on unix
//
// # Sessions
//
// The actual conversion is delegated to an engine.Engine. Each call needs a
// pair of engine sessions (UTF-8 to internal, internal to UTF-8). Opening them
// is not free, so a Converter keeps idle pairs in a sync.Pool: a pair is owned
// by exactly one call at a time and handed back afterwards, so steady-state
// calls never open or close sessions. Pairs dropped by the pool are closed by
// a runtime cleanup. Close releases every idle pair immediately.
//
// The encoding is validated once in New by opening and closing a trial pair.
//
// # Growth protocol
//
// Neither direction knows the output size in advance. Both loop: reserve
// max(remaining input bytes, 4) more units of output, run the engine, and if
// it reports engine.ErrShortDst, reserve again and continue from where it
// stopped. ToUTF8 asks a UTF8Buffer for room (the buffer may relocate its
// storage); FromUTF8 grows the destination slice itself and trims it to what
// was produced.
//
// # Errors
//
// Failures are *Error values whose Kind is one of KindEncodingUnsupported,
// KindSessionCreationFailed or KindIllegalConversion. Match them with
// errors.Is against ErrEncodingUnsupported, ErrSessionCreationFailed and
// ErrIllegalConversion.
package stringconv
