// Copyright 2024 The goredo Authors
// This file is part of the goredo library.
//
// The goredo library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The goredo library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the goredo library. If not, see <http://www.gnu.org/licenses/>.

// Package config loads a Session's tunables from a TOML file, the way a
// host application might ship one fixed configuration per puzzle family
// rather than wiring goredo.Option values up one at a time.
package config

import (
	"fmt"
	"io"
	"io/ioutil"

	"github.com/naoina/toml"

	"github.com/br903/goredo"
)

// SessionConfig holds the values a BeginSession caller would otherwise pass
// as literals or Options.
type SessionConfig struct {
	StateSize      int    `toml:"state_size"`
	CmpSize        int    `toml:"cmp_size"`
	Grafting       string `toml:"grafting"`
	PruneLimit     int    `toml:"prune_limit"`
	EquivTableBits int    `toml:"equivalence_table_bits"`
}

// defaults mirror the session package's own defaults (Graft policy, and a
// prune limit generous enough to catch short cycles without scanning deep
// chains on every move).
func defaults() SessionConfig {
	return SessionConfig{
		Grafting:   "graft",
		PruneLimit: 8,
	}
}

// Load parses a SessionConfig from r, starting from defaults() so a file
// only needs to mention the fields it wants to override.
func Load(r io.Reader) (*SessionConfig, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// GraftMode translates the config's textual grafting policy into a
// goredo.GraftMode.
func (c *SessionConfig) GraftMode() (goredo.GraftMode, error) {
	switch c.Grafting {
	case "", "nograft":
		return goredo.NoGraft, nil
	case "graft":
		return goredo.Graft, nil
	case "copypath":
		return goredo.CopyPath, nil
	case "graftandcopy":
		return goredo.GraftAndCopy, nil
	default:
		return goredo.NoGraft, fmt.Errorf("config: unknown grafting policy %q", c.Grafting)
	}
}

// Options returns the goredo.Option values BeginSession needs to apply the
// parts of this config that BeginSession itself accepts. Grafting is set
// separately, after the session opens, via Session.SetGrafting(c.GraftMode())
// — BeginSession has no grafting-policy parameter of its own — and
// PruneLimit is a per-call argument to Session.SuppressCycle, not a
// session-wide setting, so neither is represented here.
func (c *SessionConfig) Options() []goredo.Option {
	var opts []goredo.Option
	if c.EquivTableBits > 0 {
		opts = append(opts, goredo.WithEquivTableSize(c.EquivTableBits))
	}
	return opts
}
