// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/luxfi/scpquorum/identity"
	"github.com/luxfi/scpquorum/quorum"
)

// Wire tags for the binary member encoding. Deliberately not reusing
// quorum.Kind's numeric values: the wire format is a contract with
// external readers and must not shift if Kind's iota ordering ever does.
const (
	tagNode     byte = 0x00
	tagInnerSet byte = 0x01
)

// maxIDLen is the longest Node id string the uint16 length prefix can
// describe; EncodeBinary rejects longer ids rather than writing a
// truncated length.
const maxIDLen = 1<<16 - 1 // matches the uint16 length prefix's own range

// EncodeBinary renders q in the deterministic wire format: big-endian
// uint32 threshold, big-endian uint32 member count, then each member as a
// one-byte tag followed by its payload. A Node payload is a big-endian
// uint16 byte length followed by that many bytes of id.String(). An
// InnerSet payload is the nested set's own encoding, recursively, with no
// length prefix -- the recursive decoder consumes exactly the bytes its
// own header describes.
//
// Two semantically equal sets always produce identical bytes: member
// order is part of the format, matching the ordering already significant
// to the searches in package search.
func EncodeBinary[ID identity.ID](q quorum.Set[ID]) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeSet(&buf, q); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeSet[ID identity.ID](buf *bytes.Buffer, q quorum.Set[ID]) error {
	if err := binary.Write(buf, binary.BigEndian, q.Threshold); err != nil {
		return err
	}
	if err := binary.Write(buf, binary.BigEndian, uint32(len(q.Members))); err != nil {
		return err
	}
	for i, m := range q.Members {
		switch m.Kind {
		case quorum.KindNode:
			idStr := m.Node.String()
			if len(idStr) > maxIDLen {
				return fmt.Errorf("codec: member %d: id string too long (%d bytes)", i, len(idStr))
			}
			buf.WriteByte(tagNode)
			if err := binary.Write(buf, binary.BigEndian, uint16(len(idStr))); err != nil {
				return err
			}
			buf.WriteString(idStr)
		case quorum.KindInnerSet:
			buf.WriteByte(tagInnerSet)
			if err := encodeSet(buf, m.Inner); err != nil {
				return err
			}
		default:
			return fmt.Errorf("codec: member %d: unknown member kind %v", i, m.Kind)
		}
	}
	return nil
}

// DecodeBinary parses the deterministic wire format produced by
// EncodeBinary back into a quorum.Set[ID], using parse to recover each
// Node's identity from its wire string.
func DecodeBinary[ID identity.ID](data []byte, parse IDParser[ID]) (quorum.Set[ID], error) {
	r := &cursor{buf: data}
	q, err := decodeSet(r, parse)
	if err != nil {
		return quorum.Set[ID]{}, err
	}
	if r.pos != len(r.buf) {
		return quorum.Set[ID]{}, fmt.Errorf("codec: %d trailing bytes after decoding quorum set", len(r.buf)-r.pos)
	}
	return q, nil
}

type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) readN(n int) ([]byte, error) {
	if c.pos+n > len(c.buf) {
		return nil, fmt.Errorf("codec: unexpected end of input (need %d bytes, have %d)", n, len(c.buf)-c.pos)
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *cursor) readByte() (byte, error) {
	b, err := c.readN(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) readUint32() (uint32, error) {
	b, err := c.readN(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (c *cursor) readUint16() (uint16, error) {
	b, err := c.readN(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func decodeSet[ID identity.ID](c *cursor, parse IDParser[ID]) (quorum.Set[ID], error) {
	threshold, err := c.readUint32()
	if err != nil {
		return quorum.Set[ID]{}, fmt.Errorf("codec: threshold: %w", err)
	}
	count, err := c.readUint32()
	if err != nil {
		return quorum.Set[ID]{}, fmt.Errorf("codec: member count: %w", err)
	}

	var members []quorum.Member[ID]
	if count > 0 {
		members = make([]quorum.Member[ID], count)
	}
	for i := range members {
		tag, err := c.readByte()
		if err != nil {
			return quorum.Set[ID]{}, fmt.Errorf("codec: member %d: tag: %w", i, err)
		}
		switch tag {
		case tagNode:
			idLen, err := c.readUint16()
			if err != nil {
				return quorum.Set[ID]{}, fmt.Errorf("codec: member %d: id length: %w", i, err)
			}
			idBytes, err := c.readN(int(idLen))
			if err != nil {
				return quorum.Set[ID]{}, fmt.Errorf("codec: member %d: id bytes: %w", i, err)
			}
			id, err := parse(string(idBytes))
			if err != nil {
				return quorum.Set[ID]{}, fmt.Errorf("codec: member %d: parsing id: %w", i, err)
			}
			members[i] = quorum.Node(id)
		case tagInnerSet:
			inner, err := decodeSet(c, parse)
			if err != nil {
				return quorum.Set[ID]{}, fmt.Errorf("codec: member %d: %w", i, err)
			}
			members[i] = quorum.InnerSet(inner)
		default:
			return quorum.Set[ID]{}, fmt.Errorf("codec: member %d: unknown tag 0x%02x", i, tag)
		}
	}
	return quorum.New(threshold, members), nil
}
