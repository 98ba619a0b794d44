// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quorum

import "github.com/luxfi/scpquorum/identity"

// Weight returns the (numerator, denominator) fraction describing the
// probability that a uniformly random quorum slice of q contains id. The
// precondition is that id appears exactly once anywhere in the tree; under
// that precondition the walk below finds it on at most one branch.
//
// The fraction is deliberately left unreduced -- avoids pulling in a
// rational-number dependency for a value callers may not even need reduced.
// The source this is ported from multiplies counts as plain 32-bit
// arithmetic, which overflows for deeply nested trees; this version widens
// to uint64 to make that failure mode unreachable in practice rather than
// silently reproducing it.
func Weight[ID identity.ID](q Set[ID], id ID) (numerator, denominator uint64) {
	for _, m := range q.Members {
		switch m.Kind {
		case KindNode:
			if m.Node == id {
				return uint64(q.Threshold), uint64(len(q.Members))
			}
		case KindInnerSet:
			n, d := Weight(m.Inner, id)
			if n > 0 {
				return uint64(q.Threshold) * n, uint64(len(q.Members)) * d
			}
		}
	}
	return 0, 1
}
