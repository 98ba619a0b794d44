// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quorum

import "github.com/luxfi/scpquorum/identity"

// Project translates a QuorumSet[ID] into a QuorumSet[ID2] by applying as to
// every identity named in the tree, structurally: each Node(id) becomes
// Node(as(id)), each InnerSet(q) becomes InnerSet(Project(q)), thresholds
// are preserved. Go has no associated-type polymorphism, so the projection
// function is passed explicitly rather than required as a method of ID.
func Project[ID identity.ID, ID2 identity.ID](q Set[ID], as func(ID) ID2) Set[ID2] {
	members := make([]Member[ID2], len(q.Members))
	for i, m := range q.Members {
		switch m.Kind {
		case KindNode:
			members[i] = Node(as(m.Node))
		case KindInnerSet:
			members[i] = InnerSet(Project(m.Inner, as))
		}
	}
	return New(q.Threshold, members)
}

// ProjectToResponder is the common case of Project: translating a quorum
// set built from strong node identities into one expressed in lightweight
// responder identities, for observers that only need the latter.
func ProjectToResponder[ID identity.Projectable](q Set[ID]) Set[identity.ResponderID] {
	return Project(q, ID.AsResponder)
}
