// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package identity defines the capability bundle that any node identifier
// used by a quorum set, message view, or search must satisfy, plus the two
// concrete identities the rest of the stack uses: NodeID (strong,
// cryptographic) and ResponderID (light, network-address-shaped).
package identity

import "fmt"

// ID is the capability bundle required of an identity: comparable (so it
// can key a map or live in a set) and displayable. Go's comparable types are
// already safe to copy, so no separate Clone method is needed here -- both
// concrete identities below are plain comparable values.
type ID interface {
	comparable
	fmt.Stringer
}

// Projectable is an ID that can produce its lightweight ResponderID view.
// QuorumSet[ID] and Project require only ID; ProjectToResponder requires
// Projectable.
type Projectable interface {
	ID
	AsResponder() ResponderID
}

var _ Projectable = ResponderID("")
