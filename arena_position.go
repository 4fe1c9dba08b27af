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

// posID indexes a position slot inside a Session's position arena.
// invalidPos marks the absence of a position (a nil parent, a nil better).
type posID uint32

const invalidPos posID = ^posID(0)

// position is the internal record backing one node of the history tree.
// Exported behavior is reached only through the Position value handle.
type position struct {
	inUse        bool
	state        []byte
	prev         posID
	next         branchID
	nextcount    int32
	better       posID
	setbetter    bool
	movecount    int32
	endpoint     int8
	solutionend  int8
	solutionsize int32
	hashvalue    uint16
	freeNext     posID
}

// chunkAllocator grows a position arena by one chunk of n slots. Injectable
// so tests can simulate allocation failure deterministically; production
// code uses defaultPositionChunkAlloc.
type chunkAllocator func(n int) ([]position, error)

func defaultPositionChunkAlloc(n int) ([]position, error) {
	return make([]position, n), nil
}

// positionArena is a chunked free-list allocator for position records. It
// never relocates a live slot, so a posID (and the *position pointer
// obtained from it) stays valid for the slot's entire lifetime, mirroring
// the stability guaranteed once a position is added: its id never changes.
type positionArena struct {
	statesize int
	chunkSize int
	chunks    [][]position
	fresh     posID
	freeHead  posID
	live      int
	allocFn   chunkAllocator
}

func newPositionArena(statesize, chunkSize int, allocFn chunkAllocator) *positionArena {
	if allocFn == nil {
		allocFn = defaultPositionChunkAlloc
	}
	return &positionArena{
		statesize: statesize,
		chunkSize: chunkSize,
		freeHead:  invalidPos,
		allocFn:   allocFn,
	}
}

func (a *positionArena) capacity() posID {
	return posID(len(a.chunks) * a.chunkSize)
}

func (a *positionArena) get(id posID) *position {
	chunk := int(id) / a.chunkSize
	idx := int(id) % a.chunkSize
	return &a.chunks[chunk][idx]
}

// alloc returns a zeroed, in-use slot and its id, or ok=false if the
// allocator declined to grow the arena.
func (a *positionArena) alloc() (posID, *position, bool) {
	if a.freeHead != invalidPos {
		id := a.freeHead
		p := a.get(id)
		a.freeHead = p.freeNext
		state := p.state
		*p = position{}
		if cap(state) >= a.statesize {
			p.state = state[:a.statesize]
		} else {
			p.state = make([]byte, a.statesize)
		}
		p.inUse = true
		a.live++
		return id, p, true
	}
	if a.fresh >= a.capacity() {
		chunk, err := a.allocFn(a.chunkSize)
		if err != nil {
			return invalidPos, nil, false
		}
		a.chunks = append(a.chunks, chunk)
	}
	id := a.fresh
	a.fresh++
	p := a.get(id)
	p.state = make([]byte, a.statesize)
	p.inUse = true
	a.live++
	return id, p, true
}

// free returns a slot to the free list. Its state buffer is retained so a
// future alloc from this slot can reuse the backing array.
func (a *positionArena) free(id posID) {
	p := a.get(id)
	p.inUse = false
	p.freeNext = a.freeHead
	a.freeHead = id
	a.live--
}

// forEachLive visits every in-use position in id order. fn returns false to
// stop the walk early.
func (a *positionArena) forEachLive(fn func(id posID, p *position) bool) {
	for id := posID(0); id < a.fresh; id++ {
		p := a.get(id)
		if !p.inUse {
			continue
		}
		if !fn(id, p) {
			return
		}
	}
}
