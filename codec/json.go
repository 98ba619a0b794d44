// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package codec serializes quorum sets to and from the two external forms
// fixed by the wire contract: a JSON form with a {"type","args"} tagged
// member union, and a deterministic binary form used where byte-for-byte
// stability matters (e.g. hashing a quorum set for a digest). Both follow
// the JSONCodec wrapper pattern used elsewhere in this stack, generalized
// from a blanket interface{} marshaler into quorum-set-specific
// (de)serializers, since the binary round-trip guarantee needs the
// concrete shape rather than an opaque interface.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/luxfi/scpquorum/identity"
	"github.com/luxfi/scpquorum/quorum"
)

// IDParser turns the textual form of an identity (as produced by
// ID.String()) back into an ID. Go has no way to require a parse
// constructor as part of the identity.ID capability bundle, so decoders
// take it as an explicit argument instead.
type IDParser[ID identity.ID] func(s string) (ID, error)

type wireSet struct {
	Threshold uint32       `json:"threshold"`
	Members   []wireMember `json:"members"`
}

type wireMember struct {
	Type string          `json:"type"`
	Args json.RawMessage `json:"args"`
}

const (
	typeNode      = "Node"
	typeInnerSet  = "InnerSet"
)

// EncodeJSON renders q in the external JSON form:
//
//	{"threshold":<u32>,"members":[{"type":"Node","args":"<id>"}, ...]}
func EncodeJSON[ID identity.ID](q quorum.Set[ID]) ([]byte, error) {
	w, err := toWireSet(q)
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

func toWireSet[ID identity.ID](q quorum.Set[ID]) (wireSet, error) {
	w := wireSet{Threshold: q.Threshold, Members: make([]wireMember, len(q.Members))}
	for i, m := range q.Members {
		switch m.Kind {
		case quorum.KindNode:
			args, err := json.Marshal(m.Node.String())
			if err != nil {
				return wireSet{}, err
			}
			w.Members[i] = wireMember{Type: typeNode, Args: args}
		case quorum.KindInnerSet:
			inner, err := toWireSet(m.Inner)
			if err != nil {
				return wireSet{}, err
			}
			args, err := json.Marshal(inner)
			if err != nil {
				return wireSet{}, err
			}
			w.Members[i] = wireMember{Type: typeInnerSet, Args: args}
		default:
			return wireSet{}, fmt.Errorf("codec: unknown member kind %v", m.Kind)
		}
	}
	return w, nil
}

// DecodeJSON parses the external JSON form into a quorum.Set[ID], using
// parse to turn each Node's textual identity back into an ID.
func DecodeJSON[ID identity.ID](data []byte, parse IDParser[ID]) (quorum.Set[ID], error) {
	var w wireSet
	if err := json.Unmarshal(data, &w); err != nil {
		return quorum.Set[ID]{}, fmt.Errorf("codec: decode quorum set: %w", err)
	}
	return fromWireSet(w, parse)
}

func fromWireSet[ID identity.ID](w wireSet, parse IDParser[ID]) (quorum.Set[ID], error) {
	var members []quorum.Member[ID]
	if len(w.Members) > 0 {
		members = make([]quorum.Member[ID], len(w.Members))
	}
	for i, wm := range w.Members {
		switch wm.Type {
		case typeNode:
			var s string
			if err := json.Unmarshal(wm.Args, &s); err != nil {
				return quorum.Set[ID]{}, fmt.Errorf("codec: member %d: %w", i, err)
			}
			id, err := parse(s)
			if err != nil {
				return quorum.Set[ID]{}, fmt.Errorf("codec: member %d: parsing id %q: %w", i, s, err)
			}
			members[i] = quorum.Node(id)
		case typeInnerSet:
			var innerWire wireSet
			if err := json.Unmarshal(wm.Args, &innerWire); err != nil {
				return quorum.Set[ID]{}, fmt.Errorf("codec: member %d: %w", i, err)
			}
			inner, err := fromWireSet(innerWire, parse)
			if err != nil {
				return quorum.Set[ID]{}, err
			}
			members[i] = quorum.InnerSet(inner)
		default:
			return quorum.Set[ID]{}, fmt.Errorf("codec: member %d: unknown type %q", i, wm.Type)
		}
	}
	return quorum.New(w.Threshold, members), nil
}
