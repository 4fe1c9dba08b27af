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

// defaultEquivTableBits is the equivalence index's bit-vector size absent
// an override, a prime chosen the way the original design picked its table
// size: large enough to keep collision rates low for the session sizes this
// engine targets, small enough to cost nothing to allocate or rebuild.
// WithEquivTableSize lets a caller with an unusually large or small session
// pick a different size; see config.SessionConfig's equivalence_table_bits
// field for a way to carry that override in a TOML file.
//
// This deliberately does not reach for a general-purpose probabilistic
// membership library: every candidate in the dependency pack (notably
// steakknife/bloomfilter) implements a multi-probe bloom filter, which
// trades a higher false-positive rate for a smaller table. The equivalence
// index instead needs a single-probe table that can be rebuilt to an exact
// reflection of current table membership after a deletion (see rebuild
// below) — a multi-probe filter has no way to "unset" a key's bits without
// risking collateral false negatives for other keys sharing one of those
// bits, which a rebuild-from-scratch sidesteps entirely. So the index is a
// plain bit-vector, about a kilobyte at the default size, addressed with the same 16-bit
// hash used for the cheap pre-comparison filter elsewhere.
const defaultEquivTableBits = 8191

// equivIndex is an advisory, single-probe membership filter over position
// hash values. A set bit means "maybe present"; a clear bit means
// "definitely absent". It never reports a false negative, so a lookup that
// finds the bit clear can skip the full scan outright; a set bit still
// requires confirming with an actual byte comparison.
type equivIndex struct {
	tableBits uint32
	bits      []uint64
}

// newEquivIndex allocates an index with the given table size in bits. A
// non-positive size falls back to defaultEquivTableBits.
func newEquivIndex(tableBits int) *equivIndex {
	if tableBits <= 0 {
		tableBits = defaultEquivTableBits
	}
	words := (tableBits + 63) / 64
	return &equivIndex{tableBits: uint32(tableBits), bits: make([]uint64, words)}
}

func (e *equivIndex) slot(h uint16) (word, bit uint32) {
	idx := uint32(h) % e.tableBits
	return idx / 64, idx % 64
}

func (e *equivIndex) set(h uint16) {
	w, b := e.slot(h)
	e.bits[w] |= 1 << b
}

func (e *equivIndex) mayContain(h uint16) bool {
	w, b := e.slot(h)
	return e.bits[w]&(1<<b) != 0
}

func (e *equivIndex) clear() {
	for i := range e.bits {
		e.bits[i] = 0
	}
}

// rebuild recomputes the index from scratch against every position
// currently live in the session. Dropping a position never clears its bit
// individually — stale set bits are harmless (they only ever cost an extra,
// ultimately-failing byte comparison) — so the index is only ever brought
// back to an exact reflection of the table by a full rebuild, which drop.go
// and cycle.go trigger after any deletion.
func (e *equivIndex) rebuild(s *Session) {
	e.clear()
	s.posArena.forEachLive(func(id posID, p *position) bool {
		e.set(p.hashvalue)
		return true
	})
}
