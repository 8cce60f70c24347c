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

// Carrier is the item type streamed through textual stages.
//
// Carriers are values: every With* method returns a modified copy.
// Index is an ordering hint (the token sequence number when items come from a
// reader) and Error is a per-item failure carried as data.
type Carrier[S any] interface {
	WithIndex(index int) S
	GetIndex() int
	WithError(err error) S
	GetError() error
	Len() int
}
