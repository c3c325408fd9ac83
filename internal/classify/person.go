// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"regexp"
	"strings"
)

var parenSuffix = regexp.MustCompile(`\s+\(.*\)$`)

// Person is the chat partner as derived from the chat name.
type Person struct {
	Name             string
	FirstName        string
	LastName         string
	TelegramUsername string
}

// PersonFromChatName strips a leading '@' and a trailing " (...)" note from
// the chat name and splits the rest into first and last name. Chat names
// starting with '@' are kept verbatim as the username.
func PersonFromChatName(chatName string) Person {
	name := strings.TrimSpace(chatName)
	name = strings.TrimPrefix(name, "@")
	name = parenSuffix.ReplaceAllString(name, "")

	p := Person{Name: name, FirstName: name}
	if strings.HasPrefix(chatName, "@") {
		p.TelegramUsername = chatName
	}

	parts := strings.Fields(name)
	if len(parts) > 0 {
		p.FirstName = parts[0]
	}
	if len(parts) > 1 {
		p.LastName = strings.Join(parts[1:], " ")
	}
	return p
}
