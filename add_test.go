package goredo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// state4 builds a 4-byte state with the given leading byte.
func state4(b byte) []byte { return []byte{b, 0, 0, 0} }

func TestEquivalenceLongerPathPointsAtShorter(t *testing.T) {
	s, err := BeginSession(state4(0), 4, 0)
	require.NoError(t, err)
	s.SetGrafting(NoGraft)

	// A longer path reaches state 5 first, two moves deep...
	x := s.Add(s.Root(), 1, state4(1), 0, NoCheck)
	a := s.Add(x, 2, state4(5), 0, Check)
	require.True(t, a.Valid())
	require.Equal(t, int32(2), a.MoveCount())

	// ...then a shorter path reaches the same state directly from the root.
	b := s.Add(s.Root(), 3, state4(5), 0, Check)
	require.True(t, b.Valid())
	require.Equal(t, int32(1), b.MoveCount())
	require.NotEqual(t, a, b)

	require.Equal(t, b, a.Better())
	require.False(t, b.Better().Valid())

	checkInvariants(t, s)
}

func TestEquivalenceEqualLengthKeepsFirstCanonical(t *testing.T) {
	s, err := BeginSession(state4(0), 4, 0)
	require.NoError(t, err)

	a := s.Add(s.Root(), 1, state4(5), 0, Check)
	b := s.Add(s.Root(), 2, state4(5), 0, Check)

	require.Equal(t, a.MoveCount(), b.MoveCount())
	require.Equal(t, a, b.Better())
	require.False(t, a.Better().Valid())
}

func TestGraftTransplantsSubtreeOntoShorterPath(t *testing.T) {
	s, err := BeginSession(state4(0), 4, 0)
	require.NoError(t, err)
	s.SetGrafting(Graft)

	// root -1-> a -2-> a2(state 9), and a2 has two children of its own.
	a := s.Add(s.Root(), 1, state4(1), 0, NoCheck)
	a2 := s.Add(a, 2, state4(9), 0, NoCheck)
	a2x := s.Add(a2, 3, state4(30), 0, NoCheck)
	a2y := s.Add(a2, 4, state4(31), 5, NoCheck)

	require.Equal(t, int32(2), a2.MoveCount())
	require.Equal(t, int32(3), a2x.MoveCount())
	require.Equal(t, int32(3), a2y.MoveCount())

	// A shorter path reaches the same state as a2, directly from the root.
	shorter := s.Add(s.Root(), 5, state4(9), 0, Check)
	require.True(t, shorter.Valid())
	require.Equal(t, int32(1), shorter.MoveCount())

	// a2's subtree should have been transplanted onto shorter, each
	// descendant's movecount shifted by shorter.movecount - a2.movecount.
	require.Equal(t, int32(0), a2.NextCount())
	require.Equal(t, int32(2), shorter.NextCount())

	x := shorter.Next(3)
	y := shorter.Next(4)
	require.True(t, x.Valid())
	require.True(t, y.Valid())
	require.Equal(t, int32(2), x.MoveCount())
	require.Equal(t, int32(2), y.MoveCount())

	// y carried an endpoint; its solution should now be visible from the
	// shorter root too.
	require.Equal(t, int8(5), shorter.SolutionEnd())
	require.Equal(t, int32(2), shorter.SolutionSize())

	checkInvariants(t, s)
}

func TestCopyPathLeavesOriginalSubtreeInPlace(t *testing.T) {
	s, err := BeginSession(state4(0), 4, 0)
	require.NoError(t, err)
	s.SetGrafting(CopyPath)

	a := s.Add(s.Root(), 1, state4(1), 0, NoCheck)
	a2 := s.Add(a, 2, state4(9), 0, NoCheck)
	endpoint := s.Add(a2, 3, state4(30), 7, NoCheck)
	_ = endpoint

	shorter := s.Add(s.Root(), 5, state4(9), 0, Check)
	require.True(t, shorter.Valid())

	// a2 keeps its own child; CopyPath does not transplant.
	require.Equal(t, int32(1), a2.NextCount())
	// but the solution path has been reproduced under shorter too.
	require.Equal(t, int32(1), shorter.NextCount())
	require.Equal(t, int8(7), shorter.SolutionEnd())

	checkInvariants(t, s)
}

func TestCheckModeSkipsLookupForEndpointPositions(t *testing.T) {
	s, err := BeginSession(state4(0), 4, 0)
	require.NoError(t, err)
	s.SetGrafting(Graft)

	// A solution-bearing position two moves deep...
	x := s.Add(s.Root(), 1, state4(1), 0, NoCheck)
	a := s.Add(x, 2, state4(9), 3, NoCheck)
	require.True(t, a.Valid())

	// ...and a second path that reaches the same state, directly from the
	// root, also marked as an endpoint. Even under Check, endpoint
	// positions are never looked up for equivalence, so neither gets a
	// better pointer and no grafting is triggered.
	b := s.Add(s.Root(), 2, state4(9), 4, Check)
	require.True(t, b.Valid())

	require.False(t, a.Better().Valid())
	require.False(t, b.Better().Valid())
	require.Equal(t, int32(1), x.NextCount())
	require.Equal(t, int32(2), s.Root().NextCount())

	checkInvariants(t, s)
}

func TestDeferredEquivalenceResolvedInBatch(t *testing.T) {
	s, err := BeginSession(state4(0), 4, 0)
	require.NoError(t, err)

	a := s.Add(s.Root(), 1, state4(5), 0, CheckLater)
	b := s.Add(s.Root(), 2, state4(5), 0, CheckLater)
	require.False(t, a.Better().Valid())
	require.False(t, b.Better().Valid())

	resolved := s.ResolveDeferredBetters()
	require.Equal(t, 1, resolved)
	require.Equal(t, a, b.Better())

	// A second pass finds nothing left to do.
	require.Equal(t, 0, s.ResolveDeferredBetters())
}
