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

	"go.uber.org/zap"

	"github.com/benoit-pereira-da-silva/wireconv/pkg/engine"
)

// ToUTF8 converts src to UTF-8, writing into windows obtained from buf.
//
// end is the offset in buf just past the last byte written. For an empty src
// it is the offset of the first window. On error end is not meaningful and the
// buffer may hold a partial conversion past its original contents.
func (c *Converter[C]) ToUTF8(src []C, buf UTF8Buffer) (end int, err error) {
	p, err := c.acquire()
	if err != nil {
		return 0, err
	}
	defer c.release(p)

	s := p.toExternal
	s.Reset()

	in := bytesOf(src)
	cursor := -1
	step := minIncrement
	for {
		howMany := max(len(in), step)
		window, at := buf.GetMoreBytes(howMany, cursor)
		nDst, nSrc, err := s.Convert(window[:howMany], in)
		cursor = at + nDst
		in = in[nSrc:]
		switch {
		case err == nil && len(in) == 0:
			return cursor, nil
		case err == nil:
			return cursor, c.illegal(errPartialInput)
		case errors.Is(err, engine.ErrShortDst):
			if nDst == 0 && nSrc == 0 {
				// The engine needs a larger contiguous window to make progress.
				step *= 2
			}
		default:
			return cursor, c.illegal(err)
		}
	}
}

func (c *Converter[C]) illegal(cause error) *Error {
	c.logger.Debug("illegal conversion", zap.Error(cause))
	return newError(KindIllegalConversion, c.internal, cause)
}
