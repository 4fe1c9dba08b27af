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

// recalcSolution recomputes the solutionend/solutionsize pair at id from
// its own endpoint value (if any) and its live children's cached values,
// then walks up to the root redoing the same at each ancestor, stopping as
// soon as an ancestor's recomputed value matches what it already held
// (everything further up is then already consistent, since it was derived
// from this same unchanged value). Used after any structural change that
// can invalidate cached solutions: drop, cycle pruning, and grafting.
//
// Selection rule: a higher endpoint value always wins; among equal
// endpoint values, the shorter solutionsize wins; a position's own
// endpoint, if set, is itself a candidate.
func (s *Session) recalcSolution(id posID) {
	cur := id
	for cur != invalidPos {
		p := s.pos(cur)
		var bestEnd int8
		var bestSize int32
		if p.endpoint != 0 {
			bestEnd = p.endpoint
			bestSize = p.movecount
		}
		c := p.next
		for c != invalidBranch {
			b := s.br(c)
			child := s.pos(b.p)
			if child.solutionsize != 0 {
				if child.solutionend > bestEnd ||
					(child.solutionend == bestEnd && (bestSize == 0 || child.solutionsize < bestSize)) {
					bestEnd = child.solutionend
					bestSize = child.solutionsize
				}
			}
			c = b.cdr
		}
		if bestEnd == p.solutionend && bestSize == p.solutionsize {
			return
		}
		p.solutionend = bestEnd
		p.solutionsize = bestSize
		cur = p.prev
	}
}

// propagateEndpoint applies the same selection rule as recalcSolution but
// starting from a freshly observed (endpoint, movecount) candidate at id
// rather than recomputing from children; used by Add when a new endpoint
// position is created, since its own value is a pure addition rather than
// something derived from already-cached children.
func (s *Session) propagateEndpoint(id posID, endpoint int8, movecount int32) {
	cur := id
	for cur != invalidPos {
		p := s.pos(cur)
		if endpoint > p.solutionend || (endpoint == p.solutionend && movecount < p.solutionsize) {
			p.solutionend = endpoint
			p.solutionsize = movecount
			cur = p.prev
		} else {
			break
		}
	}
}
