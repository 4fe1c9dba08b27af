package goredo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScenarioSmoke(t *testing.T) {
	s, err := BeginSession([]byte{0}, 1, 0)
	require.NoError(t, err)
	root := s.Root()
	require.Equal(t, int32(0), root.MoveCount())
	require.Equal(t, int32(0), root.NextCount())
	require.False(t, root.Parent().Valid())
	s.End()
}

func TestScenarioDistinctMoves(t *testing.T) {
	s, err := BeginSession(state4(0), 4, 0)
	require.NoError(t, err)

	a := s.Add(s.Root(), 1, state4(1), 0, NoCheck)
	b := s.Add(s.Root(), 2, state4(2), 0, NoCheck)

	require.Equal(t, int32(2), s.Root().NextCount())
	require.Equal(t, int32(1), a.MoveCount())
	require.Equal(t, int32(1), b.MoveCount())
	require.NotEqual(t, a, b)
}

func TestScenarioEquivalenceWithLongerNewPath(t *testing.T) {
	s, err := BeginSession(state4(0), 4, 0)
	require.NoError(t, err)

	x := s.Add(s.Root(), 'a', state4(9), 0, NoCheck)
	deep := s.Add(x, 'a', state4(50), 0, Check)
	shallow := s.Add(s.Root(), 'c', state4(50), 0, Check)

	// Two direct children of root here (x and shallow); deep hangs off x.
	require.Equal(t, int32(2), s.Root().NextCount())
	require.Equal(t, 4, s.Size())
	require.Equal(t, shallow, deep.Better())
}

func TestScenarioGraftPolicy(t *testing.T) {
	s, err := BeginSession(state4(0), 4, 0)
	require.NoError(t, err)
	s.SetGrafting(Graft)

	c1 := s.Add(s.Root(), 'c', state4(1), 0, NoCheck)
	c2 := s.Add(c1, 'c', state4(2), 0, NoCheck)
	c3 := s.Add(c2, 'c', state4(3), 0, NoCheck)
	s.Add(c3, 'a', state4(4), 0, NoCheck)
	s.Add(c3, 'c', state4(5), 1, NoCheck)

	d := s.Add(s.Root(), 'd', state4(3), 0, Check)
	require.True(t, d.Valid())

	require.Equal(t, int32(0), c3.NextCount())
	require.Equal(t, int32(2), d.NextCount())
	require.Equal(t, int32(2), s.Root().SolutionSize())
	require.Equal(t, int8(1), s.Root().SolutionEnd())

	checkInvariants(t, s)
}

func TestScenarioEndpointPreference(t *testing.T) {
	s, err := BeginSession(state4(0), 4, 0)
	require.NoError(t, err)

	// A four-move solution with endpoint value 2.
	p := s.Root()
	for i := 0; i < 3; i++ {
		p = s.Add(p, int32(100+i), state4(byte(100+i)), 0, NoCheck)
	}
	s.Add(p, 199, state4(199), 2, NoCheck)

	// A five-move solution with endpoint value 3, reached independently.
	q := s.Root()
	for i := 0; i < 4; i++ {
		q = s.Add(q, int32(200+i), state4(byte(10+i)), 0, NoCheck)
	}
	s.Add(q, 299, state4(250), 3, NoCheck)

	require.Equal(t, int8(3), s.Root().SolutionEnd())
	require.Equal(t, int32(5), s.Root().SolutionSize())

	checkInvariants(t, s)
}

func TestScenarioCycleSuppressionWithPrune(t *testing.T) {
	s, err := BeginSession(state4(0), 4, 0)
	require.NoError(t, err)

	a := s.Add(s.Root(), 1, state4(1), 0, NoCheck)
	b := s.Add(a, 2, state4(2), 0, NoCheck)
	c := s.Add(b, 3, state4(3), 0, NoCheck)
	require.Equal(t, 4, s.Size())

	cur, ok := s.SuppressCycle(c, state4(0), 3)
	require.True(t, ok)
	require.Equal(t, s.Root(), cur)
	require.Equal(t, 1, s.Size())
}
