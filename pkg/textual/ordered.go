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
	"context"
	"maps"
	"slices"

	"github.com/benoit-pereira-da-silva/wireconv/pkg/carrier"
)

// Ordered returns a stage that restores index order after Parallel. Items are
// held back until every lower index, counting from zero, has been emitted.
// Whatever is still held when the input closes is flushed in index order, so
// gaps and duplicate indexes do not block the stream.
func Ordered[S carrier.Carrier[S]]() ProcessorFunc[S] {
	return func(ctx context.Context, in <-chan S) <-chan S {
		out := make(chan S)
		go func() {
			defer close(out)

			send := func(item S) bool {
				select {
				case <-ctx.Done():
					return false
				case out <- item:
					return true
				}
			}

			pending := make(map[int][]S)
			next := 0
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-in:
					if !ok {
						for _, idx := range slices.Sorted(maps.Keys(pending)) {
							for _, held := range pending[idx] {
								if !send(held) {
									return
								}
							}
						}
						return
					}
					idx := item.GetIndex()
					if idx < next {
						if !send(item) {
							return
						}
						continue
					}
					pending[idx] = append(pending[idx], item)
					for {
						ready, ok := pending[next]
						if !ok {
							break
						}
						delete(pending, next)
						for _, held := range ready {
							if !send(held) {
								return
							}
						}
						next++
					}
				}
			}
		}()
		return out
	}
}
