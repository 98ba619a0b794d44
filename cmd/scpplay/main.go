// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command scpplay replays a newline-delimited JSON log of messages against
// a node's quorum set and reports what FindBlockingSet and FindQuorum find
// for a given slot, the same way the original scp-play tool replayed a
// LoggingScpNode's debug dump -- minus the full slot state machine, which
// lives outside this module's scope.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/scpquorum/codec"
	"github.com/luxfi/scpquorum/config"
	"github.com/luxfi/scpquorum/identity"
	"github.com/luxfi/scpquorum/message"
	"github.com/luxfi/scpquorum/predicate"
	"github.com/luxfi/scpquorum/quorum"
	"github.com/luxfi/scpquorum/search"
)

// logLine is one replayed message: a sender's identity, the slot it
// concerns, the sender's own quorum set at the time, and an opaque string
// topic the predicate can match against.
type logLine struct {
	Sender    string          `json:"sender"`
	Slot      uint64          `json:"slot"`
	QuorumSet json.RawMessage `json:"quorumSet"`
	Topic     string          `json:"topic"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "scpplay: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logPath    string
		self       string
		slot       uint64
		wantTopic  string
	)

	cmd := &cobra.Command{
		Use:   "scpplay",
		Short: "Replay a logged message set through blocking-set and quorum search",
		Long: `scpplay reads a node's quorum set from a config file and a log of
messages seen for a slot, then reports the blocking set and quorum this
module's searches find for that slot.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, logPath, self, slot, wantTopic)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to the node's quorum set config (JSON)")
	cmd.Flags().StringVar(&logPath, "log", "", "path to the newline-delimited JSON message log")
	cmd.Flags().StringVar(&self, "self", "", "this node's identity (required for quorum search)")
	cmd.Flags().Uint64Var(&slot, "slot", 0, "slot index to replay")
	cmd.Flags().StringVar(&wantTopic, "topic", "", "if set, only messages whose topic equals this value satisfy the predicate")

	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("log")
	_ = cmd.MarkFlagRequired("self")

	return cmd
}

func run(configPath, logPath, self string, slot uint64, wantTopic string) error {
	logger := log.NewNoOpLogger()

	q, err := config.Load(configPath, logger)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	selfID, err := parseNodeID(self)
	if err != nil {
		return fmt.Errorf("parsing --self: %w", err)
	}

	msgs, err := readMessages(logPath, slot)
	if err != nil {
		return fmt.Errorf("reading log: %w", err)
	}

	var pred predicate.Predicate[identity.NodeID, string] = predicate.Always[identity.NodeID, string]{}
	if wantTopic != "" {
		pred = predicate.Func[identity.NodeID, string]{
			TestFn: func(msg message.View[identity.NodeID, string]) bool {
				return msg.Topic() == wantTopic
			},
		}
	}

	for sender, msg := range msgs {
		logger.Trace("processed message", "sender", sender, "topic", msg.Topic())
	}

	blocking, _ := search.FindBlockingSet(q, msgs, pred)
	logger.Info("blocking set found", "slot", slot, "set", blocking.String())
	fmt.Printf("blocking set (slot %d): %s\n", slot, blocking)

	quorumSet, _ := search.FindQuorum(selfID, q, msgs, pred)
	logger.Info("quorum found", "slot", slot, "set", quorumSet.String())
	fmt.Printf("quorum (slot %d): %s\n", slot, quorumSet)

	return nil
}

func readMessages(path string, slot uint64) (map[identity.NodeID]message.View[identity.NodeID, string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	msgs := make(map[identity.NodeID]message.View[identity.NodeID, string])
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var l logLine
		if err := json.Unmarshal(line, &l); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if l.Slot != slot {
			continue
		}

		sender, err := parseNodeID(l.Sender)
		if err != nil {
			return nil, fmt.Errorf("line %d: sender: %w", lineNum, err)
		}
		senderQ, err := parseQuorumSet(l.QuorumSet)
		if err != nil {
			return nil, fmt.Errorf("line %d: quorumSet: %w", lineNum, err)
		}

		msgs[sender] = message.Simple[identity.NodeID, string]{
			Sender:  sender,
			Slot:    l.Slot,
			Quorum:  senderQ,
			Payload: l.Topic,
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return msgs, nil
}

func parseQuorumSet(raw json.RawMessage) (quorum.Set[identity.NodeID], error) {
	if len(raw) == 0 {
		return quorum.Empty[identity.NodeID](), nil
	}
	return codec.DecodeJSON(raw, parseNodeID)
}

func parseNodeID(s string) (identity.NodeID, error) {
	id, err := ids.NodeIDFromString(s)
	if err != nil {
		return identity.NodeID{}, err
	}
	return identity.NewNodeID(id), nil
}
