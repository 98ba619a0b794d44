// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package search

import (
	"github.com/luxfi/scpquorum/identity"
	"github.com/luxfi/scpquorum/message"
	"github.com/luxfi/scpquorum/predicate"
	"github.com/luxfi/scpquorum/quorum"
	"github.com/luxfi/scpquorum/set"
)

// FindQuorum looks for a set U containing self such that for every v in U,
// U contains a slice of v's own quorum set. The accumulator always starts
// as {self}, so a non-empty result always contains self.
//
// As with FindBlockingSet, the member list is walked strictly left to
// right and the first quorum this traversal order discovers is returned.
// Returns (empty set, pred) if no quorum satisfying pred exists.
func FindQuorum[ID identity.ID, V any](
	self ID,
	q quorum.Set[ID],
	msgs map[ID]message.View[ID, V],
	pred predicate.Predicate[ID, V],
) (set.Set[ID], predicate.Predicate[ID, V]) {
	found, next := findQuorumHelper(q.Threshold, q.Members, msgs, pred, set.Of(self))
	if found.Len() == 0 {
		return set.Set[ID]{}, pred
	}
	return found, next
}

func findQuorumHelper[ID identity.ID, V any](
	threshold uint32,
	members []quorum.Member[ID],
	msgs map[ID]message.View[ID, V],
	pred predicate.Predicate[ID, V],
	acc set.Set[ID],
) (set.Set[ID], predicate.Predicate[ID, V]) {
	if threshold == 0 {
		return acc, pred
	}
	if int(threshold) > len(members) {
		return set.Set[ID]{}, pred
	}

	switch m := members[0]; m.Kind {
	case quorum.KindNode:
		if acc.Contains(m.Node) {
			// Already counted on this branch: it satisfies this threshold
			// position for free. Note the predicate is NOT advanced here --
			// this node was already predicate-accepted on the branch that
			// first inserted it.
			return findQuorumHelper(threshold-1, members[1:], msgs, pred, acc)
		}

		if msg, ok := msgs[m.Node]; ok {
			if next, ok := pred.Test(msg); ok {
				withNode := acc.Clone()
				withNode.Add(m.Node)
				sliceQS := msg.QuorumSet()
				acc2, pred2 := findQuorumHelper(sliceQS.Threshold, sliceQS.Members, msgs, next, withNode)
				if acc2.Len() > 0 {
					return findQuorumHelper(threshold-1, members[1:], msgs, pred2, acc2)
				}
			}
		}

	case quorum.KindInnerSet:
		acc2, pred2 := findQuorumHelper(m.Inner.Threshold, m.Inner.Members, msgs, pred, acc.Clone())
		if acc2.Len() > 0 {
			return findQuorumHelper(threshold-1, members[1:], msgs, pred2, acc2)
		}
	}

	// The first member didn't get us to quorum; try the rest.
	return findQuorumHelper(threshold, members[1:], msgs, pred, acc)
}
