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

// detachAndFree removes the leaf at id from its parent's branch list and
// frees it, rewriting any better pointer that named it to point at its own
// better (or to invalidPos, if it had none) instead. Returns the freed
// position's parent. ok is false if id is the root or is not a leaf.
func (s *Session) detachAndFree(id posID) (parentID posID, ok bool) {
	p := s.pos(id)
	if p.prev == invalidPos || p.nextcount != 0 {
		return invalidPos, false
	}
	parentID = p.prev
	parent := s.pos(parentID)

	var prevBranch branchID = invalidBranch
	cur := parent.next
	found := false
	for cur != invalidBranch {
		b := s.br(cur)
		if b.p == id {
			if prevBranch == invalidBranch {
				parent.next = b.cdr
			} else {
				s.br(prevBranch).cdr = b.cdr
			}
			parent.nextcount--
			s.brArena.free(cur)
			found = true
			break
		}
		prevBranch = cur
		cur = b.cdr
	}
	if !found {
		return invalidPos, false
	}

	replacement := p.better
	s.posArena.forEachLive(func(qid posID, q *position) bool {
		if q.better == id {
			q.better = replacement
		}
		return true
	})
	s.posArena.free(id)
	return parentID, true
}

// Drop removes a leaf position from the tree. It is a no-op,
// returning pos unchanged, if pos is the root or has any remaining
// children. On success it returns pos's former parent, recomputes the
// solution fields up the ancestor chain, and rebuilds the equivalence
// index (dropping never clears an individual bit — see equivindex.go).
func (s *Session) Drop(pos Position) Position {
	if !pos.valid() {
		return pos
	}
	parentID, ok := s.detachAndFree(pos.id)
	if !ok {
		return pos
	}
	s.recalcSolution(parentID)
	if s.index != nil {
		s.index.rebuild(s)
	}
	s.changed = true
	s.countDrop()
	return Position{s, parentID}
}
