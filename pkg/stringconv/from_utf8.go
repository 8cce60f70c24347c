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
	"slices"

	"github.com/benoit-pereira-da-silva/wireconv/pkg/engine"
)

// FromUTF8 converts the UTF-8 bytes in src to the internal encoding and
// appends the result to target, growing it as needed.
//
// The returned slice holds exactly the original elements of target followed
// by the converted characters. An empty src returns target untouched. On
// error target is returned at its original length; its spare capacity may
// have been written to.
func (c *Converter[C]) FromUTF8(src []byte, target []C) ([]C, error) {
	if len(src) == 0 {
		return target, nil
	}
	p, err := c.acquire()
	if err != nil {
		return target, err
	}
	defer c.release(p)

	s := p.toInternal
	s.Reset()

	w := charWidth[C]()
	out := target
	used := len(target) * w // bytes of out holding output
	avail := 0              // bytes reserved past used
	for {
		inc := max(len(src), minIncrement)
		out = slices.Grow(out, inc)[:len(out)+inc]
		avail += inc * w
		raw := bytesOf(out)
		nDst, nSrc, err := s.Convert(raw[used:used+avail], src)
		used += nDst
		avail -= nDst
		src = src[nSrc:]
		switch {
		case err == nil && len(src) == 0:
			if used%w != 0 {
				return target, c.illegal(errPartialChar)
			}
			return out[:len(out)-avail/w], nil
		case err == nil:
			return target, c.illegal(errPartialInput)
		case errors.Is(err, engine.ErrShortDst):
			continue
		default:
			return target, c.illegal(err)
		}
	}
}
