// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package predicate defines the monotone refinement object threaded through
// the blocking-set and quorum searches: given a message, a predicate either
// rejects it outright or accepts it and hands back a (possibly stricter)
// successor predicate that subsequent members on the same branch must
// satisfy instead.
//
// Monotonicity is the caller's responsibility, not something this package
// can check: if Test(m) returns (p', true), then for any m* that p' accepts,
// p must also have accepted m*. The searches rely on that to justify
// threading the refinement forward instead of re-testing from scratch.
package predicate

import (
	"github.com/luxfi/scpquorum/identity"
	"github.com/luxfi/scpquorum/message"
)

// Predicate is cloned freely along search branches; implementations must
// not carry shared mutable state that a clone and its original would both
// see, or backtracking silently corrupts an abandoned branch's refinement
// into the retained one. Prefer immutable fields or copy-on-write.
type Predicate[ID identity.ID, V any] interface {
	// Test inspects msg. ok is false if msg does not satisfy this
	// predicate, in which case msg must not contribute to any set being
	// assembled on this branch and next is meaningless. ok is true if msg
	// satisfies it, in which case next is the refinement that subsequent
	// messages on this branch must satisfy.
	Test(msg message.View[ID, V]) (next Predicate[ID, V], ok bool)
}
