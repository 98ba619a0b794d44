// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/luxfi/log"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/scpquorum/identity"
	"github.com/luxfi/scpquorum/quorum"
)

// spyLogger records every Warn call's message for assertions; all other
// methods fall through to the no-op logger.
type spyLogger struct {
	log.Logger
	warnings []string
}

func (s *spyLogger) Warn(msg string, ctx ...interface{}) {
	s.warnings = append(s.warnings, msg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		q       quorum.Set[identity.ResponderID]
		wantErr error
	}{
		{
			name: "valid flat",
			q:    quorum.NewWithNodeIDs[identity.ResponderID](2, []identity.ResponderID{"a", "b", "c"}),
		},
		{
			name: "empty set is valid",
			q:    quorum.Empty[identity.ResponderID](),
		},
		{
			name: "valid nested",
			q: quorum.New(2, []quorum.Member[identity.ResponderID]{
				quorum.Node[identity.ResponderID]("a"),
				quorum.InnerSet(quorum.NewWithNodeIDs[identity.ResponderID](2, []identity.ResponderID{"b", "c", "d"})),
			}),
		},
		{
			name:    "threshold exceeds members",
			q:       quorum.New[identity.ResponderID](4, []quorum.Member[identity.ResponderID]{quorum.Node[identity.ResponderID]("a")}),
			wantErr: ErrThresholdExceedsMembers,
		},
		{
			// Legal per invariant 1: threshold 0 is vacuously satisfied
			// regardless of how many members are listed.
			name: "zero threshold with members is valid",
			q:    quorum.New[identity.ResponderID](0, []quorum.Member[identity.ResponderID]{quorum.Node[identity.ResponderID]("a")}),
		},
		{
			name: "invalid nested set",
			q: quorum.New(1, []quorum.Member[identity.ResponderID]{
				quorum.InnerSet(quorum.New[identity.ResponderID](5, []quorum.Member[identity.ResponderID]{quorum.Node[identity.ResponderID]("a")})),
			}),
			wantErr: ErrThresholdExceedsMembers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.q)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quorum.json")
	writeFile(t, path, `{
		"threshold": 2,
		"members": [
			{"type":"Node","args":"NodeID-111111111111111111116DBWJs"},
			{"type":"Node","args":"NodeID-6Y3kysjF9jnHnYkdS9yGAuoHyae2eNmeV"},
			{"type":"Node","args":"NodeID-GWPcbFJZFfZreETSoWjPimr846mXEKCtu"}
		]
	}`)

	q, err := Load(path, nil)
	require.NoError(t, err)
	require.EqualValues(t, 2, q.Threshold)
	require.Len(t, q.Members, 3)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), nil)
	require.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quorum.json")
	writeFile(t, path, `not json`)

	_, err := Load(path, nil)
	require.Error(t, err)
}

func TestLoad_InvalidQuorumSet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quorum.json")
	writeFile(t, path, `{"threshold":5,"members":[{"type":"Node","args":"NodeID-111111111111111111116DBWJs"}]}`)

	_, err := Load(path, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrThresholdExceedsMembers))
}

func TestLoad_WarnsOnZeroThresholdWithMembers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quorum.json")
	writeFile(t, path, `{"threshold":0,"members":[{"type":"Node","args":"NodeID-111111111111111111116DBWJs"}]}`)

	spy := &spyLogger{Logger: log.NewNoOpLogger()}
	q, err := Load(path, spy)
	require.NoError(t, err)
	require.EqualValues(t, 0, q.Threshold)
	require.Len(t, q.Members, 1)
	require.NotEmpty(t, spy.warnings)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
