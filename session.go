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

package goredo

import (
	"fmt"

	"github.com/br903/goredo/log"
	"github.com/br903/goredo/metrics"
)

const (
	maxStateSize = 65535
	maxStride    = 65535

	// approxRecordOverhead models the bookkeeping bytes a position would
	// cost beyond its raw state in a packed C-style record (prev/next
	// pointers, counts, hash). Go's position struct does not actually lay
	// memory out this way, but the stride-too-large check the spec
	// describes is preserved as a sanity bound on statesize, measured
	// against this modeled overhead rather than an unreachable literal
	// struct size.
	approxRecordOverhead = 24

	defaultChunkSize = 1024
)

// GraftMode selects how Add reacts when it discovers that a newly
// reached position is equivalent to one already in the tree, but was
// reached by a shorter path.
type GraftMode int

const (
	// NoGraft only updates the better pointer; both subtrees keep their
	// own children.
	NoGraft GraftMode = iota
	// Graft moves the longer path's subtree onto the shorter position,
	// adjusting every transplanted descendant's movecount.
	Graft
	// CopyPath leaves the longer path's subtree in place but reproduces
	// its shortest solution path under the shorter position.
	CopyPath
	// GraftAndCopy transplants like Graft, then reproduces the
	// transplanted subtree's shortest solution path back under the
	// position that lost its children, so it is not left useless.
	GraftAndCopy
)

func (m GraftMode) String() string {
	switch m {
	case NoGraft:
		return "nograft"
	case Graft:
		return "graft"
	case CopyPath:
		return "copypath"
	case GraftAndCopy:
		return "graftandcopy"
	default:
		return "unknown"
	}
}

// CheckMode selects how Add looks for an equivalent position when a
// new state is added.
type CheckMode int

const (
	// NoCheck skips the equivalence lookup entirely.
	NoCheck CheckMode = iota
	// Check performs the lookup immediately.
	Check
	// CheckLater defers the equivalence lookup; the position is flagged
	// and later resolved in bulk by Session.ResolveDeferredBetters.
	CheckLater
)

// Session owns one branching history tree: an arena of positions, an arena
// of branches connecting them, and the bookkeeping (hash index, metrics,
// logger) that the tree's operations share.
type Session struct {
	posArena *positionArena
	brArena  *branchArena

	root      posID
	statesize int
	cmpsize   int
	grafting  GraftMode
	changed   bool

	equivTableBits int
	equivDisabled  bool
	index          *equivIndex

	log     log.Logger
	metrics *metrics.Set
}

// Option configures a Session at construction time.
type Option func(*Session)

// WithLogger installs a custom logger. The default is log.Root().
func WithLogger(l log.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithMetrics attaches a metrics.Set whose counters are incremented as the
// session's operations run. Without this option metrics are not collected.
func WithMetrics(m *metrics.Set) Option {
	return func(s *Session) { s.metrics = m }
}

// WithEquivTableSize overrides the equivalence index's bit-vector size
// (defaultEquivTableBits otherwise). A larger table lowers the hash
// collision rate for sessions expected to hold many more positions than
// the default targets; a smaller one costs less to allocate and rebuild
// for small, short-lived sessions.
func WithEquivTableSize(bits int) Option {
	return func(s *Session) { s.equivTableBits = bits }
}

// withoutEquivIndex disables the equivalence index, leaving lookups to fall
// back to a full scan. Unexported: Go's tiny fixed-size index allocation
// realistically never fails the way the spec's optional-allocation wording
// anticipates, so this stands in for that condition only in this package's
// own tests (see arena_test.go), rather than as a knob any caller
// would reasonably want.
func withoutEquivIndex() Option {
	return func(s *Session) { s.equivDisabled = true }
}

func withPositionChunkAlloc(fn chunkAllocator) Option {
	return func(s *Session) {
		s.posArena = newPositionArena(s.statesize, defaultChunkSize, fn)
	}
}

func withBranchChunkAlloc(fn branchChunkAllocator) Option {
	return func(s *Session) {
		s.brArena = newBranchArena(defaultChunkSize, fn)
	}
}

// BeginSession opens a new session rooted at initial, which must be exactly
// statesize bytes (shorter input is zero-padded, longer is truncated).
// cmpsize bounds how many leading bytes participate in hashing and
// equivalence comparison; pass 0 to compare the full state.
func BeginSession(initial []byte, statesize, cmpsize int, opts ...Option) (*Session, error) {
	if statesize <= 0 || statesize > maxStateSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStateSize, statesize)
	}
	if cmpsize < 0 || cmpsize > statesize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCmpSize, cmpsize)
	}
	if cmpsize == 0 {
		cmpsize = statesize
	}
	if statesize+approxRecordOverhead > maxStride {
		return nil, fmt.Errorf("%w: statesize %d", ErrStrideTooLarge, statesize)
	}

	s := &Session{
		statesize: statesize,
		cmpsize:   cmpsize,
		grafting:  Graft,
		log:       log.Root(),
	}
	for _, o := range opts {
		o(s)
	}
	if !s.equivDisabled {
		s.index = newEquivIndex(s.equivTableBits)
	}
	if s.posArena == nil {
		s.posArena = newPositionArena(statesize, defaultChunkSize, nil)
	}
	if s.brArena == nil {
		s.brArena = newBranchArena(defaultChunkSize, nil)
	}

	id, p, ok := s.posArena.alloc()
	if !ok {
		return nil, ErrAllocFailed
	}
	copyState(p.state, initial)
	p.prev = invalidPos
	p.next = invalidBranch
	p.better = invalidPos
	p.movecount = 0
	p.hashvalue = computeHash(p.state, s.cmpsize)
	if s.index != nil {
		s.index.set(p.hashvalue)
	}
	s.root = id

	s.log.Debug("session opened", "statesize", statesize, "cmpsize", cmpsize)
	return s, nil
}

// copyState copies src into dst, zero-padding dst if src is shorter and
// ignoring any trailing bytes if src is longer.
func copyState(dst, src []byte) {
	n := copy(dst, src)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

// End releases the session's storage. The Session must not be used
// afterwards.
func (s *Session) End() {
	s.log.Debug("session closed", "size", s.posArena.live)
	s.posArena = nil
	s.brArena = nil
	s.index = nil
}

// Root returns the position the session was opened with.
func (s *Session) Root() Position { return Position{s, s.root} }

// Size returns the number of positions currently live in the session.
func (s *Session) Size() int { return s.posArena.live }

// SetGrafting installs a new grafting policy, returning the previous one.
func (s *Session) SetGrafting(mode GraftMode) GraftMode {
	prev := s.grafting
	s.grafting = mode
	return prev
}

// Grafting returns the session's current grafting policy.
func (s *Session) Grafting() GraftMode { return s.grafting }

// HasChanged reports whether the tree has been modified since the last
// ClearChanged call (or since the session was opened).
func (s *Session) HasChanged() bool { return s.changed }

// ClearChanged resets the change flag, returning its previous value.
func (s *Session) ClearChanged() bool {
	prev := s.changed
	s.changed = false
	return prev
}

func (s *Session) pos(id posID) *position { return s.posArena.get(id) }
func (s *Session) br(id branchID) *branch { return s.brArena.get(id) }

func (s *Session) countAdd() {
	if s.metrics != nil {
		s.metrics.PositionsAdded.Inc(1)
	}
}

func (s *Session) countBranch() {
	if s.metrics != nil {
		s.metrics.BranchesAdded.Inc(1)
	}
}

func (s *Session) countDrop() {
	if s.metrics != nil {
		s.metrics.PositionsDropped.Inc(1)
	}
}

func (s *Session) countGraft() {
	if s.metrics != nil {
		s.metrics.GraftsPerformed.Inc(1)
	}
}

func (s *Session) countCyclePrune(n int) {
	if s.metrics != nil && n > 0 {
		s.metrics.PositionsDropped.Inc(int64(n))
		s.metrics.CyclesSuppressed.Inc(1)
	}
}

func (s *Session) countDeferred(n int) {
	if s.metrics != nil && n > 0 {
		s.metrics.DeferredResolved.Inc(int64(n))
	}
}
