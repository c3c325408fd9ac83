// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textnorm cleans chat message text before it is planned into
// chunks: emoji become bracketed tags, whitespace collapses, and runes
// outside an allow-list are removed.
package textnorm

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/rldyourmnd/telegram-to-pdfVectorDB/pkg/types"
)

// Normalizer applies the text pipeline. A Normalizer is immutable after
// New and safe to reuse.
type Normalizer struct {
	emoji       *strings.Replacer
	punctuation map[rune]bool
	extra       []RuneRange
}

// New builds a Normalizer from the text settings. It fails when
// ExtraRanges cannot be parsed.
func New(cfg types.TextConfig) (*Normalizer, error) {
	extra, err := ParseRanges(cfg.ExtraRanges)
	if err != nil {
		return nil, fmt.Errorf("text.extra_ranges: %w", err)
	}

	punct := make(map[rune]bool, len(cfg.Punctuation))
	for _, r := range cfg.Punctuation {
		punct[r] = true
	}

	glyphs := make([]string, 0, len(emojiTags))
	for glyph := range emojiTags {
		glyphs = append(glyphs, glyph)
	}
	sort.Strings(glyphs)
	pairs := make([]string, 0, 2*len(glyphs))
	for _, glyph := range glyphs {
		pairs = append(pairs, glyph, emojiTags[glyph])
	}

	return &Normalizer{
		emoji:       strings.NewReplacer(pairs...),
		punctuation: punct,
		extra:       extra,
	}, nil
}

// Normalize returns the cleaned form of raw, or "" for empty input.
func (n *Normalizer) Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	s = norm.NFC.String(s)
	s = n.emoji.Replace(s)
	s = CollapseSpace(s)

	filter := runes.Remove(runes.Predicate(func(r rune) bool { return !n.allowed(r) }))
	if out, _, err := transform.String(filter, s); err == nil {
		s = out
	}

	return strings.TrimSpace(s)
}

func (n *Normalizer) allowed(r rune) bool {
	switch {
	case r == '_', unicode.IsLetter(r), unicode.IsNumber(r), unicode.IsSpace(r):
		return true
	case n.punctuation[r]:
		return true
	}
	for _, rr := range n.extra {
		if r >= rr.Lo && r <= rr.Hi {
			return true
		}
	}
	return false
}

// CollapseSpace replaces each run of whitespace with a single space.
// Leading and trailing runs collapse too but are not removed.
func CollapseSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// Len returns the length of s in characters.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// Truncate cuts s to at most n characters.
func Truncate(s string, n int) string {
	if n < 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// RuneRange is an inclusive range of runes.
type RuneRange struct {
	Lo, Hi rune
}

// ParseRanges parses a rune-class body such as "а-яёА-ЯЁ": pairs joined
// by '-' are ranges, any other rune stands for itself.
func ParseRanges(class string) ([]RuneRange, error) {
	rs := []rune(class)
	var out []RuneRange
	for i := 0; i < len(rs); i++ {
		if i+2 < len(rs) && rs[i+1] == '-' {
			if rs[i+2] < rs[i] {
				return nil, fmt.Errorf("range %c-%c is reversed", rs[i], rs[i+2])
			}
			out = append(out, RuneRange{Lo: rs[i], Hi: rs[i+2]})
			i += 2
			continue
		}
		out = append(out, RuneRange{Lo: rs[i], Hi: rs[i]})
	}
	return out, nil
}
