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
	"reflect"
	"testing"
	"time"

	"github.com/benoit-pereira-da-silva/wireconv/pkg/carrier"
)

func indexes(items []carrier.Wire) []int {
	out := make([]int, len(items))
	for i, w := range items {
		out[i] = w.GetIndex()
	}
	return out
}

func wires(idx ...int) []carrier.Wire {
	items := make([]carrier.Wire, len(idx))
	for i, n := range idx {
		items[i] = carrier.Wire{Index: n}
	}
	return items
}

func TestOrdered(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		want []int
	}{
		{"already ordered", []int{0, 1, 2}, []int{0, 1, 2}},
		{"shuffled", []int{3, 1, 0, 2, 5, 4}, []int{0, 1, 2, 3, 4, 5}},
		{"gap is flushed at the end", []int{0, 4, 2, 1}, []int{0, 1, 2, 4}},
		{"late duplicate", []int{0, 1, 0}, []int{0, 1, 0}},
		{"empty", nil, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			items, err := collectWithContext(ctx, Ordered[carrier.Wire]().Apply(ctx, feed(wires(tc.in...)...)))
			if err != nil {
				t.Fatalf("collect failed: %v", err)
			}
			if got := indexes(items); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}
