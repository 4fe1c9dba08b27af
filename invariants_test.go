package goredo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants walks every live position in s and asserts the
// structural invariants every operation is required to preserve:
// movecount consistency with the parent chain, better always pointing to a
// strictly shorter path, and solutionend/solutionsize matching what
// recalcSolution would derive fresh from the current tree shape.
func checkInvariants(t *testing.T, s *Session) {
	t.Helper()
	s.posArena.forEachLive(func(id posID, p *position) bool {
		if p.prev != invalidPos {
			parent := s.pos(p.prev)
			require.Equal(t, parent.movecount+1, p.movecount, "movecount mismatch for position %d", id)
		} else {
			require.Equal(t, int32(0), p.movecount, "root movecount must be 0")
		}
		if p.better != invalidPos {
			better := s.pos(p.better)
			require.Less(t, better.movecount, p.movecount, "better of %d must be strictly shorter", id)
		}

		wantEnd, wantSize := expectedSolution(s, id)
		require.Equal(t, wantEnd, p.solutionend, "solutionend mismatch for position %d", id)
		require.Equal(t, wantSize, p.solutionsize, "solutionsize mismatch for position %d", id)
		return true
	})
}

// expectedSolution recomputes what recalcSolution should have produced for
// id, purely from the current tree shape, independent of cached state.
func expectedSolution(s *Session, id posID) (int8, int32) {
	p := s.pos(id)
	var bestEnd int8
	var bestSize int32
	if p.endpoint != 0 {
		bestEnd = p.endpoint
		bestSize = p.movecount
	}
	c := p.next
	for c != invalidBranch {
		b := s.br(c)
		childEnd, childSize := expectedSolution(s, b.p)
		if childSize != 0 {
			if childEnd > bestEnd || (childEnd == bestEnd && (bestSize == 0 || childSize < bestSize)) {
				bestEnd = childEnd
				bestSize = childSize
			}
		}
		c = b.cdr
	}
	return bestEnd, bestSize
}
