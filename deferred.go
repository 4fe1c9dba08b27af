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

// ResolveDeferredBetters runs the equivalence lookup, deferred by every Add
// call made with CheckLater, in a single batch pass: each flagged
// position's state is checked against every other position not itself still
// flagged, using the same movecount comparison Add uses online, and
// its better is set or the existing equivalent's better is pointed at it
// accordingly — without applying any grafting policy, since a bulk pass has
// no single "newly added position" to graft onto.
//
// Running it twice in a row is equivalent to running it once: the first
// pass clears every setbetter flag it processes, so a second call finds
// nothing left to resolve.
func (s *Session) ResolveDeferredBetters() int {
	var pending []posID
	s.posArena.forEachLive(func(id posID, p *position) bool {
		if p.setbetter {
			pending = append(pending, id)
		}
		return true
	})

	resolved := 0
	for _, id := range pending {
		p := s.pos(id)
		equivID, found := s.findEquivalent(p.state, id)
		if found {
			equiv := s.pos(equivID)
			if p.movecount >= equiv.movecount {
				p.better = equivID
			} else {
				equiv.better = id
			}
			resolved++
		}
		p.setbetter = false
	}
	s.countDeferred(resolved)
	return resolved
}
