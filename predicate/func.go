// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package predicate

import (
	"github.com/luxfi/scpquorum/identity"
	"github.com/luxfi/scpquorum/message"
)

// Func is the canonical functional predicate: it carries a boolean-valued
// inspection closure. A message that satisfies TestFn is accepted and the
// predicate is returned unchanged as its own successor -- Func does not
// accumulate state across messages, unlike a caller-defined predicate that
// narrows itself on each acceptance.
type Func[ID identity.ID, V any] struct {
	TestFn func(msg message.View[ID, V]) bool
}

var _ Predicate[identity.ResponderID, int] = Func[identity.ResponderID, int]{}

// Test reports TestFn(msg); on acceptance the successor is f itself.
func (f Func[ID, V]) Test(msg message.View[ID, V]) (Predicate[ID, V], bool) {
	if f.TestFn(msg) {
		return f, true
	}
	return nil, false
}
