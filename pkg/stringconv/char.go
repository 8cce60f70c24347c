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

import "unsafe"

// Char is the set of fixed-width internal character types.
//
// byte holds narrow encodings (locale codesets, UTF-8 itself), uint16 holds
// UTF-16 code units and rune or uint32 hold UTF-32 code units. Wide values
// are stored in host byte order.
type Char interface {
	~uint8 | ~uint16 | ~uint32 | ~int32
}

// charWidth is the storage size of C in bytes.
func charWidth[C Char]() int {
	var c C
	return int(unsafe.Sizeof(c))
}

// bytesOf returns the memory backing s. The result aliases s.
func bytesOf[C Char](s []C) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*charWidth[C]())
}
