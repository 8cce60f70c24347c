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

// WireFrom wraps a Go string, which is UTF-8 already.
func WireFrom(s string) Wire {
	return Wire{Value: []byte(s)}
}

// WireOf wraps b without copying.
func WireOf(b []byte) Wire {
	return Wire{Value: b}
}

// NativeOf wraps v without copying.
func NativeOf[C stringconv.Char](v []C) Native[C] {
	return Native[C]{Value: v}
}
