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

// branchID indexes a branch slot inside a Session's branch arena.
type branchID uint32

const invalidBranch branchID = ^branchID(0)

// branch is one outgoing edge from a position: a labeled move to a target
// position, linked into its parent's singly-linked branch list.
type branch struct {
	inUse    bool
	move     int32
	p        posID
	cdr      branchID
	freeNext branchID
}

type branchChunkAllocator func(n int) ([]branch, error)

func defaultBranchChunkAlloc(n int) ([]branch, error) {
	return make([]branch, n), nil
}

// branchArena is the branch-record analogue of positionArena. Kept as a
// separate type (rather than a generic arena) because branch and position
// records differ enough in shape and in how lightly branches are used that
// sharing one implementation would obscure more than it would save.
type branchArena struct {
	chunkSize int
	chunks    [][]branch
	fresh     branchID
	freeHead  branchID
	live      int
	allocFn   branchChunkAllocator
}

func newBranchArena(chunkSize int, allocFn branchChunkAllocator) *branchArena {
	if allocFn == nil {
		allocFn = defaultBranchChunkAlloc
	}
	return &branchArena{
		chunkSize: chunkSize,
		freeHead:  invalidBranch,
		allocFn:   allocFn,
	}
}

func (a *branchArena) capacity() branchID {
	return branchID(len(a.chunks) * a.chunkSize)
}

func (a *branchArena) get(id branchID) *branch {
	chunk := int(id) / a.chunkSize
	idx := int(id) % a.chunkSize
	return &a.chunks[chunk][idx]
}

func (a *branchArena) alloc() (branchID, *branch, bool) {
	if a.freeHead != invalidBranch {
		id := a.freeHead
		b := a.get(id)
		a.freeHead = b.freeNext
		*b = branch{inUse: true}
		a.live++
		return id, b, true
	}
	if a.fresh >= a.capacity() {
		chunk, err := a.allocFn(a.chunkSize)
		if err != nil {
			return invalidBranch, nil, false
		}
		a.chunks = append(a.chunks, chunk)
	}
	id := a.fresh
	a.fresh++
	b := a.get(id)
	b.inUse = true
	a.live++
	return id, b, true
}

func (a *branchArena) free(id branchID) {
	b := a.get(id)
	b.inUse = false
	b.freeNext = a.freeHead
	a.freeHead = id
	a.live--
}
