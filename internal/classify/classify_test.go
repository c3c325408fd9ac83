// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/archive"
	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/textnorm"
	"github.com/rldyourmnd/telegram-to-pdfVectorDB/pkg/types"
)

func text(s string) archive.Text { return archive.Text{Parts: []string{s}} }

func TestIdentityIsOwner(t *testing.T) {
	id := Identity{Name: "Danil", ID: "user904048578"}

	tests := []struct {
		name   string
		from   string
		fromID string
		want   bool
	}{
		{"name substring", "Danil K.", "user1", true},
		{"exact id", "Someone", "user904048578", true},
		{"id prefix is not a match", "Someone", "user9040485781", false},
		{"case sensitive name", "danil", "user1", false},
		{"other sender", "Anna", "user2", false},
		{"empty sender", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, id.IsOwner(tt.from, tt.fromID))
		})
	}
}

func TestEmptyIdentityNeverMatches(t *testing.T) {
	id := NewIdentity(types.IdentityConfig{})
	assert.False(t, id.IsOwner("Anyone", "user1"))
	assert.False(t, id.IsOwner("", ""))
}

func TestDirection(t *testing.T) {
	owner := MatcherFunc(func(from, _ string) bool { return from == "me" })
	assert.Equal(t, types.Outgoing, Direction(archive.Message{From: "me"}, owner))
	assert.Equal(t, types.Incoming, Direction(archive.Message{From: "you"}, owner))
}

func TestBuild(t *testing.T) {
	n, err := textnorm.New(types.DefaultConfig().Text)
	require.NoError(t, err)

	b := Builder{
		Normalizer: n,
		Owner:      Identity{Name: "Danil"},
		MinLength:  2,
	}

	raw := []archive.Message{
		{Type: "message", From: "Danil", Text: text("Hi   there 😀")},
		{Type: "service", From: "Anna", Text: text("joined the chat")},
		{Type: "message", From: "Anna", Text: text("ok")},
		{Type: "message", From: "Anna", Text: text("k")},
		{Type: "message", From: "Anna", Text: text("🦄🦄🦄")},
		{Type: "message", From: "Anna", Text: archive.Text{}},
		{Type: "message", From: "Anna", Text: archive.Text{Parts: []string{"see ", "link"}}},
	}

	got := b.Build(raw)
	assert.Equal(t, []types.Message{
		{Text: "Hi there [smile]", Direction: types.Outgoing},
		{Text: "ok", Direction: types.Incoming},
		{Text: "see link", Direction: types.Incoming},
	}, got)
}

func TestPersonFromChatName(t *testing.T) {
	tests := []struct {
		chat string
		want Person
	}{
		{"Anna Petrova", Person{Name: "Anna Petrova", FirstName: "Anna", LastName: "Petrova"}},
		{"  Anna  ", Person{Name: "Anna", FirstName: "Anna"}},
		{"@anna_p", Person{Name: "anna_p", FirstName: "anna_p", TelegramUsername: "@anna_p"}},
		{"Ivan Ivanovich Ivanov (work)", Person{Name: "Ivan Ivanovich Ivanov", FirstName: "Ivan", LastName: "Ivanovich Ivanov"}},
		{"Chat_42", Person{Name: "Chat_42", FirstName: "Chat_42"}},
	}
	for _, tt := range tests {
		t.Run(tt.chat, func(t *testing.T) {
			assert.Equal(t, tt.want, PersonFromChatName(tt.chat))
		})
	}
}
