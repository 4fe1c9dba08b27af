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

// pathStep is one edge of a solution path being replayed elsewhere: the
// move that was taken, and the position it led to in the source subtree.
type pathStep struct {
	move   int32
	target posID
}

// bestSolutionPath walks down from id following, at each node, the child
// selected by recalcSolution's own selection rule (the one whose cached
// solutionend/solutionsize match the parent's), until it reaches the
// position that is itself the recorded endpoint. ok is false if id has no
// solution cached at all.
func (s *Session) bestSolutionPath(id posID) ([]pathStep, bool) {
	root := s.pos(id)
	if root.solutionsize == 0 {
		return nil, false
	}
	var path []pathStep
	cur := id
	for {
		p := s.pos(cur)
		if p.endpoint != 0 && p.movecount == p.solutionsize && p.endpoint == p.solutionend {
			return path, true
		}
		var nextID posID = invalidPos
		var nextMove int32
		c := p.next
		for c != invalidBranch {
			b := s.br(c)
			child := s.pos(b.p)
			if child.solutionsize == p.solutionsize && child.solutionend == p.solutionend {
				nextID = b.p
				nextMove = b.move
				break
			}
			c = b.cdr
		}
		if nextID == invalidPos {
			return nil, false
		}
		path = append(path, pathStep{move: nextMove, target: nextID})
		cur = nextID
	}
}

// duplicatePath reproduces the shortest solution path reachable from src
// under dest, by calling Add for each step in turn with the source
// position's recorded state and endpoint value. It stops, without
// rolling back any step already applied, if an arena cannot grow to hold
// the next copied position — matching Add's own behavior on allocation
// failure.
//
// At each step, if the newly copied position has no better of its own, the
// corresponding source position (or its better, if it has one) is chosen as
// a candidate, and the copy's better is set to it when the candidate's
// movecount is strictly smaller than the copy's (a better link only ever
// points at a position with a strictly smaller movecount, so this is the
// only case in which setting one is valid), so the duplicated path still benefits from whatever shortcuts
// the original carried.
func (s *Session) duplicatePath(dest, src posID) bool {
	path, ok := s.bestSolutionPath(src)
	if !ok {
		return false
	}
	cur := dest
	for _, step := range path {
		srcPos := s.pos(step.target)
		newPos := s.Add(Position{s, cur}, step.move, srcPos.state, srcPos.endpoint, NoCheck)
		if !newPos.valid() {
			return false
		}
		np := s.pos(newPos.id)
		if np.better == invalidPos {
			candidate := step.target
			if srcPos.better != invalidPos {
				candidate = srcPos.better
			}
			if s.pos(candidate).movecount < np.movecount {
				np.better = candidate
			}
		}
		cur = newPos.id
	}
	return true
}

// DuplicatePath reproduces source's shortest solution path under dest. It
// reports whether source had a solution to copy.
func (s *Session) DuplicatePath(dest, source Position) bool {
	if !dest.valid() || !source.valid() {
		return false
	}
	return s.duplicatePath(dest.id, source.id)
}
