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
	"fmt"

	"go.uber.org/zap"

	"github.com/benoit-pereira-da-silva/wireconv/pkg/carrier"
)

// Log returns a pass-through stage that logs every item under label.
// Items carrying an error are logged at warn level, the others at debug.
// A nil logger logs nothing.
func Log[S carrier.Carrier[S]](logger *zap.Logger, label string) ProcessorFunc[S] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context, in <-chan S) <-chan S {
		return Async(ctx, in, func(item S) S {
			fields := []zap.Field{
				zap.Int("index", item.GetIndex()),
				zap.Int("len", item.Len()),
			}
			if s, ok := any(item).(fmt.Stringer); ok {
				fields = append(fields, zap.Stringer("value", s))
			}
			if err := item.GetError(); err != nil {
				logger.Warn(label, append(fields, zap.Error(err))...)
			} else {
				logger.Debug(label, fields...)
			}
			return item
		})
	}
}
