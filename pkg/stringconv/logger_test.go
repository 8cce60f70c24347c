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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))

	c, err := NewNarrow("US-ASCII")
	require.NoError(t, err)
	_, err = c.AppendUTF8(nil, []byte{0xE9})
	require.ErrorIs(t, err, ErrIllegalConversion)
	require.NoError(t, c.Close())

	entries := logs.FilterMessage("illegal conversion").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "US-ASCII", entries[0].ContextMap()["encoding"])

	// nil restores the default instead of breaking New.
	SetLogger(nil)
	assert.NotNil(t, Logger())
	c, err = NewNarrow("US-ASCII")
	require.NoError(t, err)
	require.NoError(t, c.Close())
}
