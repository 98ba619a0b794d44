// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package set

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	s := Of(1, 2, 3)
	require.Equal(t, 3, s.Len())
	require.True(t, s.Contains(1))
	require.True(t, s.Contains(2))
	require.True(t, s.Contains(3))
	require.False(t, s.Contains(4))
}

func TestNew_NegativeSize(t *testing.T) {
	s := New[int](-1)
	require.Equal(t, 0, s.Len())
}

func TestAdd_Idempotent(t *testing.T) {
	var s Set[string]
	s.Add("a")
	s.Add("a")
	require.Equal(t, 1, s.Len())
}

func TestUnion(t *testing.T) {
	a := Of(1, 2)
	b := Of(2, 3)
	a.Union(b)

	require.Equal(t, 3, a.Len())
	require.True(t, a.Contains(1))
	require.True(t, a.Contains(3))
}

func TestClone_Independent(t *testing.T) {
	a := Of(1, 2)
	b := a.Clone()
	b.Add(3)

	require.Equal(t, 2, a.Len())
	require.Equal(t, 3, b.Len())
}

func TestEquals(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(3, 2, 1)
	c := Of(1, 2)

	require.True(t, a.Equals(b))
	require.False(t, a.Equals(c))
}

func TestList(t *testing.T) {
	a := Of("x", "y", "z")
	list := a.List()
	require.ElementsMatch(t, []string{"x", "y", "z"}, list)
}

func TestString(t *testing.T) {
	empty := Set[int]{}
	require.Equal(t, "{}", empty.String())

	single := Of(42)
	require.Equal(t, "{42}", single.String())
}

func TestZeroValueUsable(t *testing.T) {
	var s Set[int]
	require.Equal(t, 0, s.Len())
	require.False(t, s.Contains(1))
	s.Add(1)
	require.True(t, s.Contains(1))
}
