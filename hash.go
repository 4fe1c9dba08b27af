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

import (
	"encoding/binary"
	"math/bits"
)

// meiyan32 is a lightly modified Meiyan mix: a fast non-cryptographic
// avalanche hash, folded to 16 bits by computeHash below for use as the
// equivalence index's table slot and as the cheap pre-comparison filter
// before a byte-for-byte state comparison. It is not meant to resist
// adversarial input and must never be used for anything security-sensitive.
func meiyan32(data []byte) uint32 {
	var h uint32 = 2166136261
	for len(data) >= 4 {
		k := binary.LittleEndian.Uint32(data)
		k = bits.RotateLeft32(k, 5) ^ bits.RotateLeft32(k, 13)
		h = (h ^ k) * 0x5bd1e995
		data = data[4:]
	}
	for _, b := range data {
		h = (h ^ uint32(b)) * 0x01000193
	}
	h ^= h >> 15
	h *= 0x2c1b3c6d
	h ^= h >> 12
	h *= 0x297a2d39
	h ^= h >> 15
	return h
}

// computeHash hashes the first cmpsize bytes of state (or all of it, if
// shorter) down to 16 bits.
func computeHash(state []byte, cmpsize int) uint16 {
	b := state
	if cmpsize < len(b) {
		b = b[:cmpsize]
	}
	h := meiyan32(b)
	return uint16((h ^ (h >> 16)) & 0xffff)
}
