// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config loads a node's quorum set from a JSON configuration file
// and validates it against invariant 1 (0 <= Threshold <= len(Members),
// recursively over every InnerSet) before handing it to the rest of the
// program. Validation failures are reported, not panicked -- a malformed
// config file is an operator error, not a programming error.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/scpquorum/codec"
	"github.com/luxfi/scpquorum/identity"
	"github.com/luxfi/scpquorum/quorum"
)

// ErrThresholdExceedsMembers is the sentinel Load's and Validate's errors
// wrap; callers that need to distinguish failure modes can match against
// it with errors.Is.
var ErrThresholdExceedsMembers = errors.New("threshold exceeds member count")

// Load reads path as JSON in the external quorum-set form (see package
// codec) and validates it. logger may be nil, in which case warnings are
// discarded; passing a real logger surfaces soft issues -- a zero threshold
// with members present, a single-member set, a threshold requiring every
// member -- that aren't invalid but are usually a misconfiguration.
func Load(path string, logger log.Logger) (quorum.Set[identity.NodeID], error) {
	if logger == nil {
		logger = noopLogger{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return quorum.Set[identity.NodeID]{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	q, err := codec.DecodeJSON(data, parseNodeID)
	if err != nil {
		return quorum.Set[identity.NodeID]{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := Validate(q); err != nil {
		return quorum.Set[identity.NodeID]{}, fmt.Errorf("config: %s: %w", path, err)
	}

	warnSoftIssues(q, logger)
	return q, nil
}

// Validate checks invariant 1 recursively: every quorum set in the tree,
// including nested InnerSets, must have 0 <= Threshold <= len(Members).
func Validate[ID identity.ID](q quorum.Set[ID]) error {
	if int(q.Threshold) > len(q.Members) {
		return fmt.Errorf("%w: threshold %d, %d members", ErrThresholdExceedsMembers, q.Threshold, len(q.Members))
	}
	for _, m := range q.Members {
		if m.Kind == quorum.KindInnerSet {
			if err := Validate(m.Inner); err != nil {
				return err
			}
		}
	}
	return nil
}

func warnSoftIssues[ID identity.ID](q quorum.Set[ID], logger log.Logger) {
	if q.Threshold == 0 && len(q.Members) > 0 {
		logger.Warn("quorum set has a zero threshold with members present; it is vacuously satisfied without consulting any of them",
			"members", len(q.Members))
	}
	if len(q.Members) == 1 {
		logger.Warn("quorum set has a single member; any agreement it reaches is trivially satisfied",
			"threshold", q.Threshold)
	}
	if q.Threshold == uint32(len(q.Members)) && len(q.Members) > 1 {
		logger.Warn("threshold requires unanimous agreement of all members",
			"threshold", q.Threshold, "members", len(q.Members))
	}
	for _, m := range q.Members {
		if m.Kind == quorum.KindInnerSet {
			warnSoftIssues(m.Inner, logger)
		}
	}
}

func parseNodeID(s string) (identity.NodeID, error) {
	id, err := ids.NodeIDFromString(s)
	if err != nil {
		return identity.NodeID{}, fmt.Errorf("parsing node id %q: %w", s, err)
	}
	return identity.NewNodeID(id), nil
}

// noopLogger discards everything; used when Load is called without a logger.
type noopLogger struct{ log.Logger }

func (noopLogger) Warn(string, ...interface{}) {}
