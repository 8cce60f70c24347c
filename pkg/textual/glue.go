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

	"github.com/benoit-pereira-da-silva/wireconv/pkg/carrier"
)

// StickLeft returns a transcoder that runs transcoder then processor.
// A nil processor returns transcoder unchanged.
func StickLeft[S1 carrier.Carrier[S1], S2 carrier.Carrier[S2]](transcoder Transcoder[S1, S2], processor Processor[S2]) Transcoder[S1, S2] {
	if transcoder == nil {
		return nil
	}
	if processor == nil {
		return transcoder
	}
	return TranscoderFunc[S1, S2](func(ctx context.Context, in <-chan S1) <-chan S2 {
		return processor.Apply(ctx, transcoder.Apply(ctx, in))
	})
}

// StickRight returns a transcoder that runs processor then transcoder.
// A nil processor returns transcoder unchanged.
func StickRight[S1 carrier.Carrier[S1], S2 carrier.Carrier[S2]](processor Processor[S1], transcoder Transcoder[S1, S2]) Transcoder[S1, S2] {
	if transcoder == nil {
		return nil
	}
	if processor == nil {
		return transcoder
	}
	return TranscoderFunc[S1, S2](func(ctx context.Context, in <-chan S1) <-chan S2 {
		return transcoder.Apply(ctx, processor.Apply(ctx, in))
	})
}
