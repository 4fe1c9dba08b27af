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

// Package goredo manages a branching history of states visited during
// interactive exploration of a discrete state space.
//
// A Session records every state a caller visits as a Position in a tree
// rooted at the state the session was opened with. Positions reached by two
// different move sequences that turn out to carry the same bytes are linked
// through a "better" pointer so the caller can steer the user towards the
// shorter of the two paths; when the shorter path is discovered after the
// longer one, the session can graft the longer path's subtree onto the
// shorter position outright. Endpoint markers propagate up the tree so that
// every ancestor knows the best solution reachable underneath it.
//
// The session only ever sees state as opaque bytes; it hashes and compares
// them but never interprets them. Everything about what a move means, how
// states render, and how a tree is saved to disk is the caller's business.
package goredo
