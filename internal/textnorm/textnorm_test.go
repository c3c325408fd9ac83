// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textnorm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rldyourmnd/telegram-to-pdfVectorDB/pkg/types"
)

func newTestNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	n, err := New(types.DefaultConfig().Text)
	require.NoError(t, err)
	return n
}

func TestNormalize(t *testing.T) {
	n := newTestNormalizer(t)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"only spaces", "  \t\n ", ""},
		{"plain ascii", "Hello, world!", "Hello, world!"},
		{"collapse whitespace", "a \t\n  b", "a b"},
		{"trim", "  hi there  ", "hi there"},
		{"mapped emoji", "nice 😀", "nice [smile]"},
		{"emoji with variation selector", "love ❤️ you", "love [red_heart] you"},
		{"keycap", "step 1️⃣", "step [keycap_1]"},
		{"zwj sequence", "👁‍🗨 look", "[eye_in_speech_bubble] look"},
		{"unmapped emoji removed", "ok 🦄", "ok"},
		{"unmapped emoji between words keeps both spaces", "a 🦄 b", "a  b"},
		{"cyrillic kept", "Привет, как дела?", "Привет, как дела?"},
		{"yo kept", "Ёлка ёжик", "Ёлка ёжик"},
		{"decomposed short i composed", "\u0438\u0306", "\u0439"},
		{"allowed punctuation", `a.b,c!d?e-f:g;h(i)j[k]l"m'n`, `a.b,c!d?e-f:g;h(i)j[k]l"m'n`},
		{"disallowed symbols", "50% off @shop #sale $5 & more", "50 off shop sale 5  more"},
		{"underscore and digits", "snake_case 42", "snake_case 42"},
		{"other scripts are word characters", "日本語 café", "日本語 café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.in))
		})
	}
}

func TestNormalizeOnlyUnmappedSymbols(t *testing.T) {
	n := newTestNormalizer(t)
	got := n.Normalize("🦄🫠")
	assert.Less(t, Len(got), types.DefaultConfig().Text.MinMessageLength)
}

func TestNormalizeConfigurablePunctuation(t *testing.T) {
	cfg := types.DefaultConfig().Text
	cfg.Punctuation = ".%"
	n, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, "50% off.", n.Normalize("50% off!."))
}

func TestEmojiTableTagsSurvive(t *testing.T) {
	n := newTestNormalizer(t)
	for glyph, tag := range emojiTags {
		got := n.Normalize("x " + glyph)
		assert.Equal(t, "x "+tag, got, "glyph %q", glyph)
	}
}

func TestEmojiTableSize(t *testing.T) {
	assert.Len(t, emojiTags, 350)
	for glyph, tag := range emojiTags {
		assert.True(t, strings.HasPrefix(tag, "[") && strings.HasSuffix(tag, "]"), "tag for %q", glyph)
	}
}

func TestParseRanges(t *testing.T) {
	rs, err := ParseRanges("а-яёА-ЯЁ")
	require.NoError(t, err)
	assert.Equal(t, []RuneRange{
		{Lo: 'а', Hi: 'я'},
		{Lo: 'ё', Hi: 'ё'},
		{Lo: 'А', Hi: 'Я'},
		{Lo: 'Ё', Hi: 'Ё'},
	}, rs)

	rs, err = ParseRanges("")
	require.NoError(t, err)
	assert.Empty(t, rs)

	_, err = ParseRanges("я-а")
	assert.Error(t, err)

	_, err = New(types.TextConfig{ExtraRanges: "z-a"})
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "абв", Truncate("абвгд", 3))
	assert.Equal(t, "ab", Truncate("ab", 5))
	assert.Equal(t, "", Truncate("ab", 0))
}

func TestCollapseSpace(t *testing.T) {
	assert.Equal(t, " a b ", CollapseSpace("\n a \t\t b  "))
	assert.Equal(t, "", CollapseSpace(""))
}
