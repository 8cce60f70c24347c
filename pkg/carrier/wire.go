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

import "errors"

// Wire is a string in its on-the-wire form: UTF-8 bytes.
type Wire struct {
	Value []byte
	Index int
	Error error
}

func (w Wire) WithIndex(idx int) Wire {
	w.Index = idx
	return w
}

func (w Wire) GetIndex() int {
	return w.Index
}

// WithError attaches err, joining it with any error already carried.
func (w Wire) WithError(err error) Wire {
	w.Error = joinError(w.Error, err)
	return w
}

func (w Wire) GetError() error {
	return w.Error
}

// Len is the size of Value in bytes.
func (w Wire) Len() int {
	return len(w.Value)
}

func (w Wire) String() string {
	return string(w.Value)
}

func joinError(current, err error) error {
	switch {
	case err == nil:
		return current
	case current == nil:
		return err
	default:
		return errors.Join(current, err)
	}
}
