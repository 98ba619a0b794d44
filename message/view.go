// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package message defines the read-only view of an SCP message that the
// blocking-set and quorum searches need. The slot state machine, signature
// verification, and wire transport that actually produce these messages are
// external collaborators -- this package only borrows what the searches
// consult.
package message

import (
	"github.com/luxfi/scpquorum/identity"
	"github.com/luxfi/scpquorum/quorum"
)

// View is a read-only projection of a message sufficient for the searches:
// who sent it, which slot it concerns, the sender's own quorum set, and an
// opaque topic payload the predicate inspects. Callers adapt their own
// message representation by implementing View rather than copying it into
// the core's own struct.
type View[ID identity.ID, V any] interface {
	SenderID() ID
	SlotIndex() uint64
	QuorumSet() quorum.Set[ID]
	Topic() V
}

// Simple is a concrete View used by tests, the replay CLI, and any caller
// that has no existing message type of its own.
type Simple[ID identity.ID, V any] struct {
	Sender  ID
	Slot    uint64
	Quorum  quorum.Set[ID]
	Payload V
}

var _ View[identity.ResponderID, int] = Simple[identity.ResponderID, int]{}

// SenderID returns the message's sender.
func (m Simple[ID, V]) SenderID() ID { return m.Sender }

// SlotIndex returns the slot the message concerns.
func (m Simple[ID, V]) SlotIndex() uint64 { return m.Slot }

// QuorumSet returns the sender's own quorum set.
func (m Simple[ID, V]) QuorumSet() quorum.Set[ID] { return m.Quorum }

// Topic returns the opaque payload the predicate inspects.
func (m Simple[ID, V]) Topic() V { return m.Payload }
