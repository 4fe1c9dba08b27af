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

// SuppressCycle checks whether state matches some proper ancestor of cur
//: a move that would bring the user back to a state they already
// passed through. If a match is found at ancestor A, the hop distance from
// cur to A (0 for cur's own parent, 1 for its grandparent, and so on) is
// compared against pruneLimit; if the distance is strictly less than the
// limit, the chain from cur up to (and including) A's child on this path
// is pruned, provided each position along the way has no other children.
// Pruning stops early at the first position with a side branch.
//
// SuppressCycle returns (A, true) if a matching ancestor was found
// (regardless of whether pruning fired), or (cur, false) otherwise.
func (s *Session) SuppressCycle(cur Position, state []byte, pruneLimit int) (Position, bool) {
	if !cur.valid() {
		return cur, false
	}
	cmp := state
	if cur.s.cmpsize < len(cmp) {
		cmp = cmp[:cur.s.cmpsize]
	}
	p := s.pos(cur.id)
	hop := 0
	walk := p.prev
	for walk != invalidPos {
		wp := s.pos(walk)
		if bytes.Equal(wp.state[:s.cmpsize], cmp) {
			if hop < pruneLimit {
				s.pruneChain(cur.id, walk)
			}
			return Position{s, walk}, true
		}
		walk = wp.prev
		hop++
	}
	return cur, false
}

// pruneChain deletes positions from fromID upward, stopping at (and never
// deleting) ancestorID, and stopping early at the first position that still
// has children of its own once the one leading towards fromID is cut away
// — a side branch the cycle never passed through.
func (s *Session) pruneChain(fromID, ancestorID posID) {
	cur := fromID
	pruned := 0
	for cur != ancestorID {
		p := s.pos(cur)
		if p.nextcount != 0 {
			break
		}
		parentID, ok := s.detachAndFree(cur)
		if !ok {
			break
		}
		pruned++
		cur = parentID
	}
	if pruned > 0 {
		s.recalcSolution(cur)
		if s.index != nil {
			s.index.rebuild(s)
		}
		s.changed = true
		s.countCyclePrune(pruned)
	}
}
