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

// lookupBranch finds the branch labeled move under prevID, promoting it to
// the head of prevID's branch list. The most recently followed move
// from any position is therefore always the cheapest to follow again.
func (s *Session) lookupBranch(prevID posID, move int32) (posID, bool) {
	parent := s.pos(prevID)
	var prevBranch branchID = invalidBranch
	cur := parent.next
	for cur != invalidBranch {
		b := s.br(cur)
		if b.move == move {
			if prevBranch != invalidBranch {
				pb := s.br(prevBranch)
				pb.cdr = b.cdr
				b.cdr = parent.next
				parent.next = cur
			}
			return b.p, true
		}
		prevBranch = cur
		cur = b.cdr
	}
	return invalidPos, false
}
