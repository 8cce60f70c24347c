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

// Transcoder is a stage that changes the carrier type: S1 -> S2.
// It follows the same contract as Processor.
type Transcoder[S1 carrier.Carrier[S1], S2 carrier.Carrier[S2]] interface {
	Apply(ctx context.Context, in <-chan S1) <-chan S2
}

// TranscoderFunc adapts a function to Transcoder, with the same protection as
// ProcessorFunc.
type TranscoderFunc[S1 carrier.Carrier[S1], S2 carrier.Carrier[S2]] func(ctx context.Context, in <-chan S1) <-chan S2

func (f TranscoderFunc[S1, S2]) Apply(ctx context.Context, in <-chan S1) <-chan S2 {
	return safeApply[S1, S2](ctx, f, in)
}
