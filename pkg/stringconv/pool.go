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
	"fmt"
	"runtime"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benoit-pereira-da-silva/wireconv/pkg/engine"
)

// sessions is one open pair of engine sessions.
type sessions struct {
	toInternal engine.Session // UTF-8 to internal
	toExternal engine.Session // internal to UTF-8
}

func (s sessions) close() error {
	return multierr.Append(s.toInternal.Close(), s.toExternal.Close())
}

// sessionPair is the unit cached by a Converter. The cleanup closes the
// sessions if the pool drops the pair without Close seeing it.
type sessionPair struct {
	sessions
	cleanup runtime.Cleanup
}

// openSessions opens both directions. If the second open fails the first
// session is closed before returning.
func (c *Converter[C]) openSessions() (_ sessions, err error) {
	toInternal, err := c.engine.Open(engine.UTF8, c.internal)
	if err != nil {
		return sessions{}, fmt.Errorf("cannot convert from %s to %s: %w", engine.UTF8, c.internal, err)
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, toInternal.Close())
		}
	}()
	toExternal, err := c.engine.Open(c.internal, engine.UTF8)
	if err != nil {
		return sessions{}, fmt.Errorf("cannot convert from %s to %s: %w", c.internal, engine.UTF8, err)
	}
	return sessions{toInternal: toInternal, toExternal: toExternal}, nil
}

// acquire hands the caller exclusive ownership of a pair, reusing an idle one
// when the pool has it.
func (c *Converter[C]) acquire() (*sessionPair, error) {
	if p, ok := c.pool.Get().(*sessionPair); ok {
		return p, nil
	}
	s, err := c.openSessions()
	if err != nil {
		c.logger.Warn("cannot open session pair", zap.Error(err))
		return nil, newError(KindSessionCreationFailed, c.internal, err)
	}
	p := &sessionPair{sessions: s}
	p.cleanup = runtime.AddCleanup(p, closeEvicted, evicted{sessions: s, logger: c.logger})
	c.logger.Debug("session pair opened")
	return p, nil
}

// release gives the pair back. Once the converter is closed pairs are closed
// instead of cached.
func (c *Converter[C]) release(p *sessionPair) {
	if c.closed.Load() {
		if err := c.discard(p); err != nil {
			c.logger.Warn("closing session pair", zap.Error(err))
		}
		return
	}
	c.pool.Put(p)
}

func (c *Converter[C]) discard(p *sessionPair) error {
	p.cleanup.Stop()
	return p.close()
}

type evicted struct {
	sessions
	logger *zap.Logger
}

func closeEvicted(e evicted) {
	if err := e.close(); err != nil {
		e.logger.Warn("closing evicted session pair", zap.Error(err))
		return
	}
	e.logger.Debug("evicted session pair closed")
}
