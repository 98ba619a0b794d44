// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package identity

import (
	"github.com/luxfi/ids"
)

// NodeID is the strong, cryptographic node identity: a thin wrapper over
// github.com/luxfi/ids.NodeID that adds the AsResponder projection required
// by the quorum-set core. Embedding keeps NodeID comparable (the underlying
// type is a fixed-size byte array) and promotes String().
type NodeID struct {
	ids.NodeID
}

var _ Projectable = NodeID{}

// NewNodeID wraps an existing ids.NodeID.
func NewNodeID(id ids.NodeID) NodeID {
	return NodeID{NodeID: id}
}

// AsResponder projects a NodeID down to its lightweight ResponderID. The
// core only fixes the type-level contract; resolving a real node identity
// to a network address is left to the caller (e.g. a peer directory), so
// this projection uses the node ID's canonical string form.
func (n NodeID) AsResponder() ResponderID {
	return ResponderID(n.NodeID.String())
}
