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

import "bytes"

// Add records the result of making move from prev, which produces state.
// If prev already has a branch labeled move, its existing target is
// returned untouched and nothing new is allocated. Otherwise a new position
// is created holding state, linked under prev by a new branch.
//
// endpoint, if non-zero, marks the new position as a solution of that
// value; the best endpoint reachable from every ancestor is updated
// accordingly.
//
// mode controls how the new state is checked against every other position
// already in the tree for equivalence: Check performs the lookup
// immediately, CheckLater flags the position for a later bulk pass via
// ResolveDeferredBetters, and NoCheck skips the lookup entirely. An endpoint
// position is never looked up under Check, regardless of mode — a solution
// marker is recorded for what it is, not folded into some other position's
// better chain. When an equivalent position is found, the one reached in
// fewer moves becomes the other's better; if the new position is the shorter
// of the two, the session's grafting policy additionally decides whether
// and how the existing, now-superseded subtree is reshaped.
//
// Add returns the invalid position if the underlying arenas cannot grow to
// hold the new position or branch.
func (s *Session) Add(prev Position, move int32, state []byte, endpoint int8, mode CheckMode) Position {
	var prevID posID = invalidPos
	if prev.valid() {
		prevID = prev.id
	}

	if prevID != invalidPos {
		if target, ok := s.lookupBranch(prevID, move); ok {
			return Position{s, target}
		}
	}

	var equivID posID = invalidPos
	var haveEquiv bool
	if mode == Check && endpoint == 0 {
		equivID, haveEquiv = s.findEquivalent(state, invalidPos)
	}

	id, p, ok := s.posArena.alloc()
	if !ok {
		return Position{}
	}
	copyState(p.state, state)
	p.endpoint = endpoint
	p.setbetter = mode == CheckLater
	p.better = invalidPos
	p.next = invalidBranch
	p.nextcount = 0
	p.hashvalue = computeHash(p.state, s.cmpsize)

	if prevID != invalidPos {
		bid, b, ok2 := s.brArena.alloc()
		if !ok2 {
			s.posArena.free(id)
			return Position{}
		}
		parent := s.pos(prevID)
		b.move = move
		b.p = id
		b.cdr = parent.next
		parent.next = bid
		parent.nextcount++
		p.prev = prevID
		p.movecount = parent.movecount + 1
		s.countBranch()
	} else {
		p.prev = invalidPos
		p.movecount = 0
	}

	if s.index != nil {
		s.index.set(p.hashvalue)
	}

	if endpoint != 0 {
		s.propagateEndpoint(id, endpoint, p.movecount)
	}

	if haveEquiv {
		equiv := s.pos(equivID)
		if p.movecount >= equiv.movecount {
			p.better = equivID
		} else {
			equiv.better = id
			s.applyGraft(equivID, id)
		}
	}

	s.changed = true
	s.countAdd()
	return Position{s, id}
}

// findEquivalent scans every live, non-deferred position for one whose
// first cmpsize bytes match state, returning the end of its better chain
// (the position currently considered canonical for that state). exclude, if
// not invalidPos, is skipped — used by ResolveDeferredBetters so a position
// can never match itself.
func (s *Session) findEquivalent(state []byte, exclude posID) (posID, bool) {
	h := computeHash(state, s.cmpsize)
	if s.index != nil && !s.index.mayContain(h) {
		return invalidPos, false
	}
	cmp := state
	if s.cmpsize < len(cmp) {
		cmp = cmp[:s.cmpsize]
	}
	found := invalidPos
	s.posArena.forEachLive(func(id posID, p *position) bool {
		if id == exclude || p.setbetter || p.hashvalue != h {
			return true
		}
		if !bytes.Equal(p.state[:s.cmpsize], cmp) {
			return true
		}
		found = id
		return false
	})
	if found == invalidPos {
		return invalidPos, false
	}
	cur := found
	for {
		p := s.pos(cur)
		if p.better == invalidPos {
			break
		}
		cur = p.better
	}
	return cur, true
}
