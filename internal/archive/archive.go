// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive loads a Telegram chat export (result.json).
//
// The whole document is decoded at once. Load fails with one of the
// sentinel errors below before anything else in the run touches disk.
package archive

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	// TypePersonalChat marks a one-to-one conversation.
	TypePersonalChat = "personal_chat"
	// TypeMessage marks a real message, as opposed to a service event.
	TypeMessage = "message"
)

var (
	ErrNotFound    = errors.New("input file not found")
	ErrInvalidJSON = errors.New("invalid JSON")
	ErrNoChats     = errors.New("no chats found")
)

// Archive is the decoded export.
type Archive struct {
	Chats struct {
		List []Chat `json:"list"`
	} `json:"chats"`
}

// Chat is one entry of chats.list.
type Chat struct {
	Type     string    `json:"type"`
	Name     string    `json:"name"`
	ID       FlexID    `json:"id"`
	Messages []Message `json:"messages"`
}

// Message is one entry of a chat's messages. Fields not needed for
// conversion are not decoded.
type Message struct {
	Type   string `json:"type"`
	Text   Text   `json:"text"`
	From   string `json:"from"`
	FromID string `json:"from_id"`
}

// IsPersonal reports whether the chat is a one-to-one conversation.
func (c Chat) IsPersonal() bool { return c.Type == TypePersonalChat }

// DisplayName returns the chat name, or "Chat_<id>" when the export has
// no name for it.
func (c Chat) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	id := string(c.ID)
	if id == "" {
		id = "Unknown"
	}
	return "Chat_" + id
}

// IsMessage reports whether the entry carries user text.
func (m Message) IsMessage() bool { return m.Type == TypeMessage }

// Text is message text as exported: either a plain string or a list of
// fragments, each a string or an object with a "text" field.
type Text struct {
	Parts []string
}

// String concatenates the fragments in order.
func (t Text) String() string {
	return strings.Join(t.Parts, "")
}

// UnmarshalJSON accepts a string, null, or an array of fragments.
// Fragments without text are ignored.
func (t *Text) UnmarshalJSON(data []byte) error {
	t.Parts = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		t.Parts = []string{s}
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("text: expected string or array: %w", err)
	}
	for _, r := range raw {
		var s string
		if err := json.Unmarshal(r, &s); err == nil {
			t.Parts = append(t.Parts, s)
			continue
		}
		var entity struct {
			Text *string `json:"text"`
		}
		if err := json.Unmarshal(r, &entity); err == nil && entity.Text != nil {
			t.Parts = append(t.Parts, *entity.Text)
		}
	}
	return nil
}

// FlexID holds a chat id that the export writes as a number or a string.
type FlexID string

// UnmarshalJSON keeps numbers in their literal form.
func (id *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = FlexID(n.String())
	return nil
}

// Load reads and decodes the export at path. It returns ErrNotFound,
// ErrInvalidJSON or ErrNoChats (wrapped with detail) for the fatal cases.
func Load(path string) (*Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes an export held in memory.
func Parse(data []byte) (*Archive, error) {
	var a Archive
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if len(a.Chats.List) == 0 {
		return nil, ErrNoChats
	}
	return &a, nil
}
