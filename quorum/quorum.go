// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package quorum implements the quorum-set data model: a threshold-weighted
// tree of trust assertions naming whose agreement a node depends on. The
// type is generic over the identity used to name members, so the same tree
// shape serves both strong node identities and lightweight responder
// identities.
package quorum

import (
	"fmt"
	"strings"

	"github.com/luxfi/scpquorum/identity"
	"github.com/luxfi/scpquorum/set"
)

// Kind discriminates the two Member variants.
type Kind uint8

const (
	// KindNode is a single trusted identity.
	KindNode Kind = iota
	// KindInnerSet is a nested quorum set.
	KindInnerSet
)

func (k Kind) String() string {
	switch k {
	case KindNode:
		return "Node"
	case KindInnerSet:
		return "InnerSet"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Member is a quorum-set member: either a single identity (Node) or a
// nested quorum set (InnerSet). Go has no closed sum type, so the variant
// is carried as a tag plus the two payload fields; only the field matching
// Kind is meaningful.
type Member[ID identity.ID] struct {
	Kind  Kind
	Node  ID
	Inner Set[ID]
}

// Node constructs a Node-kind member.
func Node[ID identity.ID](id ID) Member[ID] {
	return Member[ID]{Kind: KindNode, Node: id}
}

// InnerSet constructs an InnerSet-kind member.
func InnerSet[ID identity.ID](q Set[ID]) Member[ID] {
	return Member[ID]{Kind: KindInnerSet, Inner: q}
}

func (m Member[ID]) String() string {
	switch m.Kind {
	case KindNode:
		return m.Node.String()
	case KindInnerSet:
		return m.Inner.String()
	default:
		return "<invalid member>"
	}
}

// Set is the quorum set itself: a threshold plus an ordered list of
// members. Member order matters for the searches' first-match refinement
// logic (see package search); the existence of a blocking set or quorum is
// order-independent.
//
// Invariant (enforced by callers, not by this package): 0 <= Threshold <=
// len(Members). Set{} -- threshold 0, no members -- is the canonical empty
// quorum set, vacuously accepted.
type Set[ID identity.ID] struct {
	Threshold uint32
	Members   []Member[ID]
}

// New constructs a quorum set directly.
func New[ID identity.ID](threshold uint32, members []Member[ID]) Set[ID] {
	return Set[ID]{Threshold: threshold, Members: members}
}

// NewWithNodeIDs wraps each id in a Node member.
func NewWithNodeIDs[ID identity.ID](threshold uint32, ids []ID) Set[ID] {
	members := make([]Member[ID], len(ids))
	for i, id := range ids {
		members[i] = Node(id)
	}
	return New(threshold, members)
}

// NewWithInnerSets wraps each set in an InnerSet member.
func NewWithInnerSets[ID identity.ID](threshold uint32, sets []Set[ID]) Set[ID] {
	members := make([]Member[ID], len(sets))
	for i, s := range sets {
		members[i] = InnerSet(s)
	}
	return New(threshold, members)
}

// Empty returns the canonical empty quorum set: threshold 0, no members.
func Empty[ID identity.ID]() Set[ID] {
	return Set[ID]{}
}

// Nodes flattens the tree into the set of every identity named anywhere in
// it, direct or nested. Cost is O(size of tree).
func (q Set[ID]) Nodes() set.Set[ID] {
	result := set.New[ID](len(q.Members))
	q.collectNodes(&result)
	return result
}

func (q Set[ID]) collectNodes(into *set.Set[ID]) {
	for _, m := range q.Members {
		switch m.Kind {
		case KindNode:
			into.Add(m.Node)
		case KindInnerSet:
			m.Inner.collectNodes(into)
		}
	}
}

// String renders the quorum set for diagnostics.
func (q Set[ID]) String() string {
	parts := make([]string, len(q.Members))
	for i, m := range q.Members {
		parts[i] = m.String()
	}
	return fmt.Sprintf("{threshold:%d, members:[%s]}", q.Threshold, strings.Join(parts, ", "))
}
