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

package carrier

import "github.com/benoit-pereira-da-silva/wireconv/pkg/stringconv"

// Native is a string in the process's internal encoding. Its meaning depends
// on the converter that produced it or will consume it.
type Native[C stringconv.Char] struct {
	Value []C
	Index int
	Error error
}

func (n Native[C]) WithIndex(idx int) Native[C] {
	n.Index = idx
	return n
}

func (n Native[C]) GetIndex() int {
	return n.Index
}

// WithError attaches err, joining it with any error already carried.
func (n Native[C]) WithError(err error) Native[C] {
	n.Error = joinError(n.Error, err)
	return n
}

func (n Native[C]) GetError() error {
	return n.Error
}

// Len is the number of characters in Value.
func (n Native[C]) Len() int {
	return len(n.Value)
}
