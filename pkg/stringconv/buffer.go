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

import "slices"

// UTF8Buffer is the growable output of ToUTF8, typically the marshaling
// buffer of a wire protocol.
//
// GetMoreBytes returns a writable window of at least howMany bytes starting at
// offset at. firstUnused is the offset just past the bytes written so far by
// the current call; everything before it must be preserved, even when the
// buffer moves its storage. A negative firstUnused means nothing has been
// written yet and lets the buffer choose where the window starts.
type UTF8Buffer interface {
	GetMoreBytes(howMany int, firstUnused int) (window []byte, at int)
}

// Buffer is a UTF8Buffer backed by a byte slice. The zero value is an empty
// buffer ready to use.
//
// Windows handed out by GetMoreBytes extend the buffer's length, so after a
// conversion the caller trims it with Truncate(end).
type Buffer struct {
	buf []byte
}

// NewBuffer returns a Buffer that appends after the contents of b.
// The Buffer takes ownership of b.
func NewBuffer(b []byte) *Buffer {
	return &Buffer{buf: b}
}

// GetMoreBytes implements UTF8Buffer.
func (b *Buffer) GetMoreBytes(howMany int, firstUnused int) ([]byte, int) {
	if firstUnused < 0 || firstUnused > len(b.buf) {
		firstUnused = len(b.buf)
	}
	b.buf = slices.Grow(b.buf[:firstUnused], howMany)[:firstUnused+howMany]
	return b.buf[firstUnused:], firstUnused
}

// Truncate discards all but the first n bytes. It panics if n is out of range.
func (b *Buffer) Truncate(n int) {
	b.buf = b.buf[:n]
}

// Bytes returns the buffer contents. The slice aliases the buffer until the
// next GetMoreBytes.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

func (b *Buffer) Len() int {
	return len(b.buf)
}

// Reset empties the buffer but keeps its storage.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}
