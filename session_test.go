package goredo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBeginSessionValidation(t *testing.T) {
	_, err := BeginSession(nil, 0, 0)
	require.True(t, errors.Is(err, ErrInvalidStateSize))

	_, err = BeginSession(make([]byte, 4), 4, -1)
	require.True(t, errors.Is(err, ErrInvalidCmpSize))

	_, err = BeginSession(make([]byte, 4), 4, 5)
	require.True(t, errors.Is(err, ErrInvalidCmpSize))

	s, err := BeginSession(make([]byte, 4), 4, 0)
	require.NoError(t, err)
	require.Equal(t, 1, s.Size())
	require.True(t, s.Root().Valid())
	require.Equal(t, int32(0), s.Root().MoveCount())
}

func TestAddAndNext(t *testing.T) {
	s, err := BeginSession([]byte{0, 0, 0, 0}, 4, 0)
	require.NoError(t, err)

	p1 := s.Add(s.Root(), 1, []byte{1, 0, 0, 0}, 0, NoCheck)
	require.True(t, p1.Valid())
	require.Equal(t, int32(1), p1.MoveCount())
	require.Equal(t, int32(1), s.Root().NextCount())

	got := s.Root().Next(1)
	require.Equal(t, p1, got)

	missing := s.Root().Next(99)
	require.False(t, missing.Valid())

	checkInvariants(t, s)
}

func TestAddReusesExistingBranch(t *testing.T) {
	s, err := BeginSession([]byte{0, 0, 0, 0}, 4, 0)
	require.NoError(t, err)

	p1 := s.Add(s.Root(), 1, []byte{1, 0, 0, 0}, 0, NoCheck)
	before := s.Size()
	p1again := s.Add(s.Root(), 1, []byte{9, 9, 9, 9}, 0, NoCheck)
	require.Equal(t, p1, p1again)
	require.Equal(t, before, s.Size())
}

func TestDropLeaf(t *testing.T) {
	s, err := BeginSession([]byte{0, 0, 0, 0}, 4, 0)
	require.NoError(t, err)

	p1 := s.Add(s.Root(), 1, []byte{1, 0, 0, 0}, 0, NoCheck)
	require.Equal(t, int32(1), s.Root().NextCount())

	back := s.Drop(p1)
	require.Equal(t, s.Root(), back)
	require.Equal(t, int32(0), s.Root().NextCount())
	require.Equal(t, 1, s.Size())

	checkInvariants(t, s)
}

func TestDropRefusesRootAndInnerNode(t *testing.T) {
	s, err := BeginSession([]byte{0, 0, 0, 0}, 4, 0)
	require.NoError(t, err)

	p1 := s.Add(s.Root(), 1, []byte{1, 0, 0, 0}, 0, NoCheck)
	s.Add(p1, 2, []byte{1, 2, 0, 0}, 0, NoCheck)

	same := s.Drop(s.Root())
	require.Equal(t, s.Root(), same)

	unchanged := s.Drop(p1)
	require.Equal(t, p1, unchanged)
	require.Equal(t, 3, s.Size())
}

func TestChangedFlag(t *testing.T) {
	s, err := BeginSession([]byte{0, 0, 0, 0}, 4, 0)
	require.NoError(t, err)
	require.False(t, s.HasChanged())

	s.Add(s.Root(), 1, []byte{1, 0, 0, 0}, 0, NoCheck)
	require.True(t, s.HasChanged())
	require.True(t, s.ClearChanged())
	require.False(t, s.HasChanged())
}
