// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package search implements the two recursive graph searches over a
// QuorumSet: blocking-set discovery and quorum discovery. Both are pure,
// total functions -- no I/O, no panics on any input accepted by the type
// signature, "no match" signaled by an empty returned set rather than an
// error. Both are parameterized by a Predicate threaded through the
// recursion so later branches see the refinement accepted by earlier ones.
package search

import (
	"github.com/luxfi/scpquorum/identity"
	"github.com/luxfi/scpquorum/message"
	"github.com/luxfi/scpquorum/predicate"
	"github.com/luxfi/scpquorum/quorum"
	"github.com/luxfi/scpquorum/set"
)

// FindBlockingSet looks for a minimal-in-shape set of identities whose
// acceptance of pred blocks quorum for its negation: a set covering at
// least n-k+1 of q's immediate members, where n = len(q.Members) and k =
// q.Threshold. Covering an inner-set member means recursively containing a
// blocking set for it.
//
// The member list is walked strictly left to right; when several candidate
// blocking sets exist, the one returned is the first this traversal order
// finds. Returns (empty set, pred) if no blocking set satisfying pred
// exists -- no refinement from a failed branch leaks into the result.
func FindBlockingSet[ID identity.ID, V any](
	q quorum.Set[ID],
	msgs map[ID]message.View[ID, V],
	pred predicate.Predicate[ID, V],
) (set.Set[ID], predicate.Predicate[ID, V]) {
	needed, ok := blockingQuota(q)
	if !ok {
		return set.Set[ID]{}, pred
	}
	found, next := findBlockingSetHelper(needed, q.Members, msgs, pred, set.Set[ID]{})
	if found.Len() == 0 {
		return set.Set[ID]{}, pred
	}
	return found, next
}

// blockingQuota computes n-k+1, the number of immediate members a blocking
// set must cover. ok is false when threshold > len(members), which violates
// invariant 1 and would underflow the plain subtraction; such a set can
// never be covered, so callers treat !ok the same as "no blocking set".
func blockingQuota[ID identity.ID](q quorum.Set[ID]) (needed uint32, ok bool) {
	n := uint32(len(q.Members))
	if q.Threshold > n {
		return 0, false
	}
	return n - q.Threshold + 1, true
}

func findBlockingSetHelper[ID identity.ID, V any](
	needed uint32,
	members []quorum.Member[ID],
	msgs map[ID]message.View[ID, V],
	pred predicate.Predicate[ID, V],
	acc set.Set[ID],
) (set.Set[ID], predicate.Predicate[ID, V]) {
	if needed == 0 {
		return acc, pred
	}
	if int(needed) > len(members) {
		return set.Set[ID]{}, pred
	}

	switch m := members[0]; m.Kind {
	case quorum.KindNode:
		if msg, ok := msgs[m.Node]; ok {
			if next, ok := pred.Test(msg); ok {
				acc2 := acc.Clone()
				acc2.Add(m.Node)
				return findBlockingSetHelper(needed-1, members[1:], msgs, next, acc2)
			}
		}

	case quorum.KindInnerSet:
		if innerNeeded, ok := blockingQuota(m.Inner); ok {
			acc2, pred2 := findBlockingSetHelper(innerNeeded, m.Inner.Members, msgs, pred, acc.Clone())
			if acc2.Len() > 0 {
				return findBlockingSetHelper(needed-1, members[1:], msgs, pred2, acc2)
			}
		}
	}

	// The first member didn't get us to a blocking set; try the rest.
	return findBlockingSetHelper(needed, members[1:], msgs, pred, acc)
}
