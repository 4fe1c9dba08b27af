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

// Position is a lightweight, comparable handle onto one node of a
// session's history tree. Its zero value is the invalid position, returned
// by lookups that find nothing; comparing two Positions with == tells
// whether they name the same node, which is how callers detect that a move
// led back to a state already recorded elsewhere.
type Position struct {
	s  *Session
	id posID
}

func (p Position) valid() bool { return p.s != nil && p.id != invalidPos }

// Valid reports whether p names an actual position rather than the zero
// value.
func (p Position) Valid() bool { return p.valid() }

// State returns the position's stored state. The returned slice aliases the
// session's internal storage and must not be modified or retained past the
// position's lifetime; copy it if the caller needs to keep it.
func (p Position) State() []byte {
	if !p.valid() {
		return nil
	}
	return p.s.pos(p.id).state
}

// UpdateExtraState overwrites the bytes beyond the session's cmpsize (the
// portion that does not participate in hashing or equivalence comparison)
// with the corresponding bytes of state. It is a no-op if the session has
// no such extra region (cmpsize == statesize). state must be statesize
// bytes long; only its tail is consulted.
func (p Position) UpdateExtraState(state []byte) {
	if !p.valid() {
		return
	}
	s := p.s
	if s.cmpsize >= s.statesize {
		return
	}
	pp := s.pos(p.id)
	copy(pp.state[s.cmpsize:], state[s.cmpsize:])
}

// MoveCount returns the number of moves from the session's root to p.
func (p Position) MoveCount() int32 {
	if !p.valid() {
		return 0
	}
	return p.s.pos(p.id).movecount
}

// NextCount returns the number of distinct moves recorded from p.
func (p Position) NextCount() int32 {
	if !p.valid() {
		return 0
	}
	return p.s.pos(p.id).nextcount
}

// Endpoint returns the endpoint value p was added with (0 if none).
func (p Position) Endpoint() int8 {
	if !p.valid() {
		return 0
	}
	return p.s.pos(p.id).endpoint
}

// SolutionEnd returns the best endpoint value reachable from p, including p
// itself, or 0 if no endpoint is reachable.
func (p Position) SolutionEnd() int8 {
	if !p.valid() {
		return 0
	}
	return p.s.pos(p.id).solutionend
}

// SolutionSize returns the move count, from the root, of the best solution
// reachable from p, or 0 if none is reachable.
func (p Position) SolutionSize() int32 {
	if !p.valid() {
		return 0
	}
	return p.s.pos(p.id).solutionsize
}

// Parent returns p's parent, or the invalid position if p is the root.
func (p Position) Parent() Position {
	if !p.valid() {
		return Position{}
	}
	prev := p.s.pos(p.id).prev
	if prev == invalidPos {
		return Position{}
	}
	return Position{p.s, prev}
}

// Better returns the position p's better pointer names, or the invalid
// position if none is set.
func (p Position) Better() Position {
	if !p.valid() {
		return Position{}
	}
	better := p.s.pos(p.id).better
	if better == invalidPos {
		return Position{}
	}
	return Position{p.s, better}
}

// Next returns the position reached by the given move from p, promoting
// that branch to the head of p's branch list, or the invalid position if no
// such move has been recorded.
func (p Position) Next(move int32) Position {
	if !p.valid() {
		return Position{}
	}
	id, ok := p.s.lookupBranch(p.id, move)
	if !ok {
		return Position{}
	}
	return Position{p.s, id}
}

// Session returns the session p belongs to.
func (p Position) Session() *Session { return p.s }
