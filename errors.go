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

import "errors"

// Sentinel errors returned by BeginSession and the arena allocators. Wrap
// with fmt.Errorf("...: %w", ErrX) where additional context helps; callers
// should compare with errors.Is.
var (
	// ErrInvalidStateSize is returned when statesize is non-positive or
	// exceeds the engine's maximum.
	ErrInvalidStateSize = errors.New("goredo: invalid state size")

	// ErrInvalidCmpSize is returned when cmpsize is negative or larger
	// than statesize.
	ErrInvalidCmpSize = errors.New("goredo: invalid comparing size")

	// ErrStrideTooLarge is returned when the modeled per-position record
	// size would exceed the engine's internal index range.
	ErrStrideTooLarge = errors.New("goredo: per-position stride too large")

	// ErrAllocFailed is returned when a chunk allocator declines to grow
	// an arena, whether because it ran out of memory or because a test
	// is deliberately simulating that condition.
	ErrAllocFailed = errors.New("goredo: arena allocation failed")
)
