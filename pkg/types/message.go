// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the tg2pdf pipeline.
package types

// Direction tells whether a message was sent by the archive owner.
type Direction string

const (
	Outgoing Direction = "outgoing"
	Incoming Direction = "incoming"
)

// Message is one normalized, classified chat message.
type Message struct {
	Text      string    `json:"text" yaml:"text"`
	Direction Direction `json:"direction" yaml:"direction"`
}

// Conversation holds the messages of one personal chat in archive order.
type Conversation struct {
	Name     string    `json:"name" yaml:"name"`
	Messages []Message `json:"messages" yaml:"messages"`
}

// Counts returns the number of outgoing and incoming messages.
func (c Conversation) Counts() (sent, received int) {
	for _, m := range c.Messages {
		if m.Direction == Outgoing {
			sent++
		} else {
			received++
		}
	}
	return sent, received
}
