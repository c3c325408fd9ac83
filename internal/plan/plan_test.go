// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plan

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rldyourmnd/telegram-to-pdfVectorDB/pkg/types"
)

func defaultPlanner() *Planner {
	return New(types.DefaultConfig().Planner)
}

// messages returns n messages of exactly length characters, alternating
// direction.
func messages(n, length int) []types.Message {
	msgs := make([]types.Message, n)
	for i := range msgs {
		dir := types.Incoming
		if i%2 == 0 {
			dir = types.Outgoing
		}
		msgs[i] = types.Message{Text: strings.Repeat("x", length), Direction: dir}
	}
	return msgs
}

var positionRe = regexp.MustCompile(`\[(\d+)/(\d+)\]`)

// positions extracts every [pos/total] marker from the chunks in order.
func positions(t *testing.T, chunks []string) []int {
	t.Helper()
	var out []int
	for _, c := range chunks {
		for _, m := range positionRe.FindAllStringSubmatch(c, -1) {
			n, err := strconv.Atoi(m[1])
			require.NoError(t, err)
			out = append(out, n)
		}
	}
	return out
}

func TestChunkSizeTiers(t *testing.T) {
	p := defaultPlanner()

	tests := []struct {
		avg      float64
		wantTier Tier
		wantSize int
	}{
		{0, TierShort, 25},
		{10, TierShort, 25},
		{49.99, TierShort, 25},
		{50, TierMedium, 18},
		{149.99, TierMedium, 18},
		{150, TierLong, 12},
		{1000, TierLong, 12},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.avg), func(t *testing.T) {
			tier, size := p.ChunkSize(tt.avg)
			assert.Equal(t, tt.wantTier, tier)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}

func TestMaxChunksPerFile(t *testing.T) {
	p := defaultPlanner()

	tests := []struct {
		name   string
		avg    float64
		budget float64
		want   int
	}{
		{"floor estimate clamps to max", 10, 200, 100},
		{"long messages", 1000, 200, 32},
		{"tiny budget clamps to min", 200, 5, 12},
		{"estimate at the floor", 240, 200, 100},
		{"huge budget clamps to max", 1000, 1e20, 100},
		{"infinite budget clamps to max", 1000, math.Inf(1), 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := p.KBPerChunk(tt.avg)
			assert.Equal(t, tt.want, p.MaxChunksPerFile(tt.budget, kb))
		})
	}
}

func TestKBPerChunk(t *testing.T) {
	p := defaultPlanner()
	assert.InDelta(t, 1.2, p.KBPerChunk(10), 1e-9)
	assert.InDelta(t, 1.2, p.KBPerChunk(240), 1e-9)
	assert.InDelta(t, 5.0, p.KBPerChunk(1000), 1e-9)
}

func TestLineFormat(t *testing.T) {
	p := defaultPlanner()

	line, ok := p.Line(types.Message{Text: "hi  there", Direction: types.Outgoing}, 3, 10, "Anna")
	require.True(t, ok)
	assert.Equal(t, "[3/10] Me: hi there", line)

	line, ok = p.Line(types.Message{Text: "hello", Direction: types.Incoming}, 4, 10, "Anna")
	require.True(t, ok)
	assert.Equal(t, "[4/10] From Anna: hello", line)

	_, ok = p.Line(types.Message{Text: "  ", Direction: types.Incoming}, 5, 10, "Anna")
	assert.False(t, ok)
}

func TestLineTruncates(t *testing.T) {
	cfg := types.DefaultConfig().Planner
	cfg.MaxMessageLength = 5
	p := New(cfg)

	line, ok := p.Line(types.Message{Text: "абвгдеж", Direction: types.Outgoing}, 1, 1, "X")
	require.True(t, ok)
	assert.Equal(t, "[1/1] Me: абвгд", line)
}

func TestChunksDropEmptyGroups(t *testing.T) {
	p := defaultPlanner()
	msgs := []types.Message{
		{Text: "a1", Direction: types.Outgoing},
		{Text: "b2", Direction: types.Incoming},
		{Text: " ", Direction: types.Incoming},
		{Text: " ", Direction: types.Incoming},
	}

	chunks := p.Chunks(msgs, "Bob", 2)
	assert.Equal(t, []string{"[1/4] Me: a1 | [2/4] From Bob: b2"}, chunks)

	chunks = p.Chunks(msgs, "Bob", 1)
	assert.Equal(t, []string{"[1/4] Me: a1", "[2/4] From Bob: b2"}, chunks)
}

func TestPlanThreeShortMessages(t *testing.T) {
	msgs := []types.Message{
		{Text: strings.Repeat("a", 10), Direction: types.Outgoing},
		{Text: strings.Repeat("b", 10), Direction: types.Incoming},
		{Text: strings.Repeat("c", 10), Direction: types.Outgoing},
	}

	got := defaultPlanner().Plan(msgs, "Anna", 200)

	assert.InDelta(t, 10, got.AvgLength, 1e-9)
	assert.Equal(t, TierShort, got.Tier)
	assert.Equal(t, 25, got.ChunkSize)
	require.Len(t, got.Chunks, 1)
	assert.Equal(t,
		"[1/3] Me: aaaaaaaaaa | [2/3] From Anna: bbbbbbbbbb | [3/3] Me: cccccccccc",
		got.Chunks[0])
	require.Len(t, got.Groups, 1)
	assert.False(t, got.Groups[0].Multipart())
	assert.Equal(t, "Anna.pdf", got.Groups[0].Filename("Anna"))
	assert.Equal(t, "Anna", got.Groups[0].Title("Anna"))
}

func TestPlanLongConversationSplits(t *testing.T) {
	cfg := types.DefaultConfig().Planner
	cfg.MinChunksPerFile = 1
	cfg.MaxChunksPerFile = 15
	p := New(cfg)

	msgs := messages(250, 200)
	got := p.Plan(msgs, "Anna", 200)

	assert.Equal(t, TierLong, got.Tier)
	assert.Equal(t, 12, got.ChunkSize)
	assert.Len(t, got.Chunks, 21)
	assert.Equal(t, 15, got.MaxChunksPerFile)

	require.Len(t, got.Groups, 2)
	assert.Len(t, got.Groups[0].Chunks, 15)
	assert.Len(t, got.Groups[1].Chunks, 6)
	assert.Equal(t, "Anna_part1of2.pdf", got.Groups[0].Filename("Anna"))
	assert.Equal(t, "Anna_part2of2.pdf", got.Groups[1].Filename("Anna"))
	assert.Equal(t, "Anna (Part 2/2)", got.Groups[1].Title("Anna"))
}

func TestPositionsContiguousAcrossFiles(t *testing.T) {
	cfg := types.DefaultConfig().Planner
	cfg.MinChunksPerFile = 1
	cfg.MaxChunksPerFile = 4

	for _, n := range []int{1, 7, 25, 26, 99, 250} {
		for _, length := range []int{5, 60, 300} {
			t.Run(fmt.Sprintf("n=%d/len=%d", n, length), func(t *testing.T) {
				got := New(cfg).Plan(messages(n, length), "P", 10)

				var all []string
				for _, g := range got.Groups {
					all = append(all, g.Chunks...)
				}
				pos := positions(t, all)
				require.Len(t, pos, n)
				for i, p := range pos {
					assert.Equal(t, i+1, p)
				}
				for _, m := range positionRe.FindAllStringSubmatch(strings.Join(all, " "), -1) {
					assert.Equal(t, strconv.Itoa(n), m[2])
				}
			})
		}
	}
}

func TestSplitPreservesChunkOrder(t *testing.T) {
	chunks := make([]string, 23)
	for i := range chunks {
		chunks[i] = fmt.Sprintf("chunk-%d", i)
	}

	for _, limit := range []int{1, 5, 22, 23, 24, 100} {
		groups := Split(chunks, limit)

		var joined []string
		for i, g := range groups {
			assert.Equal(t, i+1, g.Index)
			assert.Equal(t, len(groups), g.Count)
			assert.LessOrEqual(t, len(g.Chunks), limit)
			joined = append(joined, g.Chunks...)
		}
		assert.Equal(t, chunks, joined, "limit=%d", limit)
	}
}

func TestSplitEmpty(t *testing.T) {
	groups := Split(nil, 10)
	require.Len(t, groups, 1)
	assert.Empty(t, groups[0].Chunks)
}

func TestFilenameRoundTrip(t *testing.T) {
	for _, count := range []int{2, 3, 10, 12} {
		chunks := make([]string, count*3)
		groups := Split(chunks, 3)
		require.Len(t, groups, count)

		for _, g := range groups {
			name := g.Filename(`We/ird: "name"?`)
			idx, n, ok := ParsePart(name)
			require.True(t, ok, name)
			assert.Equal(t, g.Index, idx)
			assert.Equal(t, len(groups), n)
			assert.True(t, idx >= 1 && idx <= n)
		}
	}

	_, _, ok := ParsePart("Anna.pdf")
	assert.False(t, ok)
	_, _, ok = ParsePart("Departure.pdf")
	assert.False(t, ok)
	_, _, ok = ParsePart("x_part3of2.pdf")
	assert.False(t, ok)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "a_b_c_d_e_f_g_h_i_", SanitizeFilename(`a<b>c:d"e/f\g|h?i*`))
	assert.Equal(t, "Анна Петрова", SanitizeFilename("Анна Петрова"))
	assert.Equal(t, "Unknown", SanitizeFilename(""))
}
