// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides message direction and turns raw archive
// messages into the normalized Message list a conversation is planned from.
package classify

import (
	"strings"

	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/archive"
	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/textnorm"
	"github.com/rldyourmnd/telegram-to-pdfVectorDB/pkg/types"
)

// Matcher reports whether a sender is the archive owner.
type Matcher interface {
	IsOwner(from, fromID string) bool
}

// Identity matches the owner by display-name substring or exact sender id.
// Empty fields never match.
type Identity struct {
	Name string
	ID   string
}

// NewIdentity builds an Identity from configuration.
func NewIdentity(cfg types.IdentityConfig) Identity {
	return Identity{Name: cfg.Name, ID: cfg.ID}
}

// IsOwner implements Matcher.
func (i Identity) IsOwner(from, fromID string) bool {
	if i.Name != "" && strings.Contains(from, i.Name) {
		return true
	}
	return i.ID != "" && fromID == i.ID
}

// MatcherFunc adapts a plain function to Matcher.
type MatcherFunc func(from, fromID string) bool

// IsOwner implements Matcher.
func (f MatcherFunc) IsOwner(from, fromID string) bool { return f(from, fromID) }

// Direction classifies a raw message.
func Direction(m archive.Message, owner Matcher) types.Direction {
	if owner.IsOwner(m.From, m.FromID) {
		return types.Outgoing
	}
	return types.Incoming
}

// Builder turns raw archive messages into normalized, classified messages.
type Builder struct {
	Normalizer *textnorm.Normalizer
	Owner      Matcher
	MinLength  int
}

// Build keeps only real messages whose normalized text has at least
// MinLength characters, in archive order.
func (b Builder) Build(raw []archive.Message) []types.Message {
	out := make([]types.Message, 0, len(raw))
	for _, m := range raw {
		if !m.IsMessage() {
			continue
		}
		text := b.Normalizer.Normalize(m.Text.String())
		if text == "" || textnorm.Len(text) < b.MinLength {
			continue
		}
		out = append(out, types.Message{
			Text:      text,
			Direction: Direction(m, b.Owner),
		})
	}
	return out
}
