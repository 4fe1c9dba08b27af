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

// applyGraft is invoked from Add immediately after oldID's better pointer
// has been set to newID (oldID is the longer-reached, now-superseded
// position; newID is the position just added by a shorter path). It applies
// the session's grafting policy.
func (s *Session) applyGraft(oldID, newID posID) {
	switch s.grafting {
	case NoGraft:
		// better pointers already linked; nothing structural to do.
	case Graft:
		s.transplant(oldID, newID)
	case CopyPath:
		s.duplicatePath(newID, oldID)
	case GraftAndCopy:
		s.transplant(oldID, newID)
		s.duplicatePath(oldID, newID)
	}
}

// transplant moves oldID's entire set of children onto newID, then adjusts
// every transplanted descendant's movecount by the difference in depth
// between the two positions. oldID becomes a leaf; if oldID is
// itself an endpoint it keeps its own solution record, otherwise it has
// none. newID is freshly created by Add and so is guaranteed to have no
// children of its own yet.
func (s *Session) transplant(oldID, newID posID) {
	oldPos := s.pos(oldID)
	newPos := s.pos(newID)
	delta := newPos.movecount - oldPos.movecount

	movedHead := oldPos.next
	movedCount := oldPos.nextcount

	c := movedHead
	for c != invalidBranch {
		b := s.br(c)
		s.adjustSubtree(b.p, newID, delta)
		c = b.cdr
	}

	newPos.next = movedHead
	newPos.nextcount = movedCount

	oldPos.next = invalidBranch
	oldPos.nextcount = 0

	// oldPos's cached solution fields are left as they were (stale, since
	// they were derived from the subtree just moved away): recalcSolution
	// recomputes them from scratch — now that oldPos has no children, that
	// collapses to whatever oldPos's own endpoint contributes, or to no
	// solution at all — notices the stale value no longer matches, and so
	// keeps walking up to fix every ancestor that cached the old value too.
	s.recalcSolution(oldID)
	s.recalcSolution(newID)
	s.countGraft()
}

// adjustSubtree reparents the subtree rooted at id under newParent and
// shifts every position in it (id included) by delta moves: movecount and,
// where set, solutionsize. A better link whose target no longer has a
// strictly smaller movecount after the shift is inverted, so the invariant
// that a better pointer always names a strictly shorter path is preserved
// — the position that used to point at its better becomes the
// better of its former target instead, and its own better link is cleared.
func (s *Session) adjustSubtree(id posID, newParent posID, delta int32) {
	s.pos(id).prev = newParent
	stack := []posID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		p := s.pos(cur)
		p.movecount += delta
		if p.solutionsize != 0 {
			p.solutionsize += delta
		}
		if p.better != invalidPos {
			bp := s.pos(p.better)
			if bp.movecount >= p.movecount {
				bp.better = cur
				p.better = invalidPos
			}
		}
		c := p.next
		for c != invalidBranch {
			b := s.br(c)
			stack = append(stack, b.p)
			c = b.cdr
		}
	}
}
