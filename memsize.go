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

import "github.com/fjl/memsize"

// MemoryUsage returns a breakdown of the session's in-memory footprint,
// walking the arenas the way memsize walks any other graph of Go values.
// Meant for diagnostics and capacity planning, not for anything the engine
// itself depends on.
func (s *Session) MemoryUsage() memsize.Sizes {
	return memsize.Scan(s)
}
