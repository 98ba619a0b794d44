// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quorum

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/scpquorum/identity"
)

func TestNewWithNodeIDs(t *testing.T) {
	q := NewWithNodeIDs[identity.ResponderID](2, []identity.ResponderID{"a", "b", "c"})
	require.EqualValues(t, 2, q.Threshold)
	require.Len(t, q.Members, 3)
	for _, m := range q.Members {
		require.Equal(t, KindNode, m.Kind)
	}
}

func TestNewWithInnerSets(t *testing.T) {
	inner := NewWithNodeIDs[identity.ResponderID](1, []identity.ResponderID{"a"})
	q := NewWithInnerSets[identity.ResponderID](1, []Set[identity.ResponderID]{inner})
	require.Len(t, q.Members, 1)
	require.Equal(t, KindInnerSet, q.Members[0].Kind)
	require.Equal(t, inner, q.Members[0].Inner)
}

func TestEmpty(t *testing.T) {
	q := Empty[identity.ResponderID]()
	require.Zero(t, q.Threshold)
	require.Empty(t, q.Members)
}

func TestNodes_Flat(t *testing.T) {
	q := NewWithNodeIDs[identity.ResponderID](2, []identity.ResponderID{"a", "b", "c"})
	nodes := q.Nodes()
	require.Equal(t, 3, nodes.Len())
	require.True(t, nodes.Contains(identity.ResponderID("a")))
}

func TestNodes_Nested(t *testing.T) {
	inner := NewWithNodeIDs[identity.ResponderID](1, []identity.ResponderID{"c", "d"})
	q := New(1, []Member[identity.ResponderID]{
		Node[identity.ResponderID]("a"),
		Node[identity.ResponderID]("b"),
		InnerSet(inner),
	})

	nodes := q.Nodes()
	require.Equal(t, 4, nodes.Len())
	for _, id := range []identity.ResponderID{"a", "b", "c", "d"} {
		require.True(t, nodes.Contains(id))
	}
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "Node", KindNode.String())
	require.Equal(t, "InnerSet", KindInnerSet.String())
	require.Contains(t, Kind(99).String(), "Kind(99)")
}

func TestMember_String(t *testing.T) {
	n := Node[identity.ResponderID]("a")
	require.Equal(t, "a", n.String())

	inner := NewWithNodeIDs[identity.ResponderID](1, []identity.ResponderID{"b"})
	m := InnerSet(inner)
	require.Equal(t, inner.String(), m.String())
}

func TestSet_String(t *testing.T) {
	q := NewWithNodeIDs[identity.ResponderID](2, []identity.ResponderID{"a", "b"})
	s := q.String()
	require.Contains(t, s, "threshold:2")
	require.Contains(t, s, "a")
	require.Contains(t, s, "b")
}

func TestWeight_DirectMember(t *testing.T) {
	q := NewWithNodeIDs[identity.ResponderID](2, []identity.ResponderID{"a", "b", "c"})
	num, den := Weight(q, identity.ResponderID("a"))
	require.EqualValues(t, 2, num)
	require.EqualValues(t, 3, den)
}

func TestWeight_NestedMember(t *testing.T) {
	inner := NewWithNodeIDs[identity.ResponderID](1, []identity.ResponderID{"c", "d"})
	q := New(1, []Member[identity.ResponderID]{
		Node[identity.ResponderID]("a"),
		InnerSet(inner),
	})

	// outer threshold 1 of 2 members, inner threshold 1 of 2 members:
	// P(slice contains "c") = 1/2 * 1/2 = 1/4, left unreduced as 1*1 / 2*2.
	num, den := Weight(q, identity.ResponderID("c"))
	require.EqualValues(t, 1, num)
	require.EqualValues(t, 4, den)
}

func TestWeight_AbsentMember(t *testing.T) {
	q := NewWithNodeIDs[identity.ResponderID](2, []identity.ResponderID{"a", "b"})
	num, den := Weight(q, identity.ResponderID("z"))
	require.EqualValues(t, 0, num)
	require.EqualValues(t, 1, den)
}
