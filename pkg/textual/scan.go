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


package textual

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"runtime/debug"

	"github.com/benoit-pereira-da-silva/wireconv/pkg/carrier"
)

// Scan streams the tokens of r as carriers built by newItem, indexed from
// zero in reading order. A nil split selects ScanLines. Each token is a copy
// and may be retained.
//
// A read error is emitted as a last item carrying the error. The channel is
// closed at end of input or when ctx is done. A panic in newItem is recorded
// in the context's PanicStore.
func Scan[S carrier.Carrier[S]](ctx context.Context, r io.Reader, split bufio.SplitFunc, newItem func(token []byte) S) <-chan S {
	ctx, ps := EnsurePanicStore(ctx)
	if split == nil {
		split = ScanLines
	}
	scanner := bufio.NewScanner(r)
	scanner.Split(split)

	out := make(chan S)
	go func() {
		defer close(out)
		defer func() {
			if rec := recover(); rec != nil {
				ps.Store(rec, debug.Stack())
			}
		}()

		send := func(item S) bool {
			select {
			case <-ctx.Done():
				return false
			case out <- item:
				return true
			}
		}

		index := 0
		for scanner.Scan() {
			if ctx.Err() != nil {
				return
			}
			if !send(newItem(bytes.Clone(scanner.Bytes())).WithIndex(index)) {
				return
			}
			index++
		}
		if err := scanner.Err(); err != nil {
			send(newItem(nil).WithIndex(index).WithError(err))
		}
	}()
	return out
}

// ScanLines is a bufio.SplitFunc returning lines with their terminator, so
// that joining the tokens gives back the input byte for byte. The last line
// may lack a terminator.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
