// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package predicate

import (
	"github.com/luxfi/scpquorum/identity"
	"github.com/luxfi/scpquorum/message"
)

// Always is the trivial predicate: it ignores its argument and always
// accepts, returning itself as the successor.
type Always[ID identity.ID, V any] struct{}

var _ Predicate[identity.ResponderID, int] = Always[identity.ResponderID, int]{}

// Test always accepts.
func (a Always[ID, V]) Test(message.View[ID, V]) (Predicate[ID, V], bool) {
	return a, true
}
