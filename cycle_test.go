package goredo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuppressCycleDetectsAncestorWithoutPruning(t *testing.T) {
	s, err := BeginSession(state4(0), 4, 0)
	require.NoError(t, err)

	a := s.Add(s.Root(), 1, state4(1), 0, NoCheck)
	b := s.Add(a, 2, state4(2), 0, NoCheck)

	// A move from b back to a's state, but with a prune limit too tight
	// (0) to actually delete anything.
	found, ok := s.SuppressCycle(b, state4(1), 0)
	require.True(t, ok)
	require.Equal(t, a, found)
	require.Equal(t, int32(1), a.NextCount(), "nothing should have been pruned")

	checkInvariants(t, s)
}

func TestSuppressCyclePrunesLinearChainBackToRoot(t *testing.T) {
	s, err := BeginSession(state4(0), 4, 0)
	require.NoError(t, err)

	a := s.Add(s.Root(), 1, state4(1), 0, NoCheck)
	b := s.Add(a, 2, state4(2), 0, NoCheck)
	c := s.Add(b, 3, state4(3), 0, NoCheck)
	require.Equal(t, 4, s.Size())

	found, ok := s.SuppressCycle(c, state4(0), 3)
	require.True(t, ok)
	require.Equal(t, s.Root(), found)
	require.Equal(t, int32(0), s.Root().NextCount())
	require.Equal(t, 1, s.Size())

	checkInvariants(t, s)
}

func TestSuppressCycleStopsAtSideBranch(t *testing.T) {
	s, err := BeginSession(state4(0), 4, 0)
	require.NoError(t, err)

	a := s.Add(s.Root(), 1, state4(1), 0, NoCheck)
	b := s.Add(a, 2, state4(2), 0, NoCheck)
	c := s.Add(b, 3, state4(3), 0, NoCheck)
	// a second branch off of b, so b cannot be pruned even though it sits
	// on the path from c back to the root.
	s.Add(b, 4, state4(44), 0, NoCheck)

	found, ok := s.SuppressCycle(c, state4(0), 10)
	require.True(t, ok)
	require.Equal(t, s.Root(), found)

	// c was prunable and is gone; b was not (it still has the other
	// branch) and so survives along with its remaining child.
	require.False(t, b.Next(3).Valid())
	require.Equal(t, int32(1), b.NextCount())
	require.Equal(t, int32(1), a.NextCount())

	checkInvariants(t, s)
}

func TestSuppressCycleReportsNoMatch(t *testing.T) {
	s, err := BeginSession(state4(0), 4, 0)
	require.NoError(t, err)

	a := s.Add(s.Root(), 1, state4(1), 0, NoCheck)
	_, ok := s.SuppressCycle(a, state4(99), 10)
	require.False(t, ok)
}
