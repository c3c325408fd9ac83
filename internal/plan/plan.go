// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package plan groups a conversation's messages into text chunks and
// splits the chunks into files that should stay under a size budget.
//
// Sizes are estimated, never measured: rendering is the expensive step and
// happens once per final file. The estimate is a linear function of the
// average message length, with tiers and constants taken from
// types.PlannerConfig so they can be retuned without code changes.
package plan

import (
	"fmt"
	"math"
	"strings"

	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/textnorm"
	"github.com/rldyourmnd/telegram-to-pdfVectorDB/pkg/types"
)

// Tier names the chunk-size bucket chosen from the average message length.
type Tier string

const (
	TierShort  Tier = "short"
	TierMedium Tier = "medium"
	TierLong   Tier = "long"
)

// FileGroup is the ordered run of chunks written to one output file.
// Index is 1-based; Count is the number of groups in the conversation.
type FileGroup struct {
	Index  int
	Count  int
	Chunks []string
}

// Multipart reports whether the conversation was split across files.
func (g FileGroup) Multipart() bool { return g.Count > 1 }

// Filename returns the output file name for the group.
func (g FileGroup) Filename(chatName string) string {
	base := SanitizeFilename(chatName)
	if !g.Multipart() {
		return base + Ext
	}
	return fmt.Sprintf("%s_part%dof%d%s", base, g.Index, g.Count, Ext)
}

// Title returns the human-readable document title for the group.
func (g FileGroup) Title(name string) string {
	if !g.Multipart() {
		return name
	}
	return fmt.Sprintf("%s (Part %d/%d)", name, g.Index, g.Count)
}

// Plan is the planner's decision for one conversation.
type Plan struct {
	AvgLength        float64
	Tier             Tier
	ChunkSize        int
	KBPerChunk       float64
	MaxChunksPerFile int
	Chunks           []string
	Groups           []FileGroup
}

// EstimatedKB returns the estimated size of the whole conversation.
func (p Plan) EstimatedKB() float64 {
	return float64(len(p.Chunks)) * p.KBPerChunk
}

// Planner applies a fixed PlannerConfig. It holds no state between calls.
type Planner struct {
	cfg types.PlannerConfig
}

// New returns a Planner for cfg.
func New(cfg types.PlannerConfig) *Planner {
	return &Planner{cfg: cfg}
}

// Plan builds chunks for msgs and splits them into file groups so that each
// file is estimated to fit maxFileSizeKB. personName labels incoming lines.
func (p *Planner) Plan(msgs []types.Message, personName string, maxFileSizeKB float64) Plan {
	avg := AverageLength(msgs)
	tier, size := p.ChunkSize(avg)
	kb := p.KBPerChunk(avg)
	maxChunks := p.MaxChunksPerFile(maxFileSizeKB, kb)

	chunks := p.Chunks(msgs, personName, size)

	return Plan{
		AvgLength:        avg,
		Tier:             tier,
		ChunkSize:        size,
		KBPerChunk:       kb,
		MaxChunksPerFile: maxChunks,
		Chunks:           chunks,
		Groups:           Split(chunks, maxChunks),
	}
}

// AverageLength returns the mean message length in characters, 0 for no
// messages.
func AverageLength(msgs []types.Message) float64 {
	if len(msgs) == 0 {
		return 0
	}
	total := 0
	for _, m := range msgs {
		total += textnorm.Len(m.Text)
	}
	return float64(total) / float64(len(msgs))
}

// ChunkSize picks messages-per-chunk by average length. Each threshold is
// exclusive: an average equal to ShortThreshold is already medium.
func (p *Planner) ChunkSize(avg float64) (Tier, int) {
	switch {
	case avg < p.cfg.ShortThreshold:
		return TierShort, p.cfg.ShortChunkSize
	case avg < p.cfg.MediumThreshold:
		return TierMedium, p.cfg.MediumChunkSize
	default:
		return TierLong, p.cfg.LongChunkSize
	}
}

// KBPerChunk estimates the on-disk cost of one chunk.
func (p *Planner) KBPerChunk(avg float64) float64 {
	return math.Max(p.cfg.MinKBPerChunk, avg*p.cfg.KBPerChar)
}

// MaxChunksPerFile converts a file budget into a chunk count, clamped to
// [MinChunksPerFile, MaxChunksPerFile].
func (p *Planner) MaxChunksPerFile(budgetKB, kbPerChunk float64) int {
	if kbPerChunk <= 0 {
		return p.cfg.MaxChunksPerFile
	}
	n := budgetKB * p.cfg.SafetyPercent / 100 / kbPerChunk
	n = math.Max(float64(p.cfg.MinChunksPerFile), math.Min(n, float64(p.cfg.MaxChunksPerFile)))
	return int(n)
}

// Chunks walks msgs in consecutive groups of size and renders each group
// as one chunk. Positions are 1-based over the whole conversation. Groups
// that yield no text produce no chunk.
func (p *Planner) Chunks(msgs []types.Message, personName string, size int) []string {
	if size <= 0 {
		size = 1
	}
	total := len(msgs)
	var chunks []string
	for start := 0; start < total; start += size {
		end := min(start+size, total)
		lines := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			if line, ok := p.Line(msgs[i], i+1, total, personName); ok {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			chunks = append(chunks, strings.Join(lines, p.cfg.Separator))
		}
	}
	return chunks
}

// Line formats one message as "[pos/total] Me: text" or
// "[pos/total] From person: text". It reports false for blank text.
func (p *Planner) Line(m types.Message, pos, total int, personName string) (string, bool) {
	text := strings.TrimSpace(textnorm.CollapseSpace(m.Text))
	if text == "" {
		return "", false
	}
	text = textnorm.Truncate(text, p.cfg.MaxMessageLength)

	if m.Direction == types.Outgoing {
		return fmt.Sprintf("[%d/%d] Me: %s", pos, total, text), true
	}
	return fmt.Sprintf("[%d/%d] From %s: %s", pos, total, personName, text), true
}

// Split partitions chunks into consecutive groups of at most maxPerFile.
// A conversation that fits yields one group with Index 1 and Count 1.
func Split(chunks []string, maxPerFile int) []FileGroup {
	if maxPerFile <= 0 || len(chunks) <= maxPerFile {
		return []FileGroup{{Index: 1, Count: 1, Chunks: chunks}}
	}

	count := (len(chunks) + maxPerFile - 1) / maxPerFile
	groups := make([]FileGroup, 0, count)
	for i := 0; i < count; i++ {
		start := i * maxPerFile
		end := min(start+maxPerFile, len(chunks))
		groups = append(groups, FileGroup{
			Index:  i + 1,
			Count:  count,
			Chunks: chunks[start:end],
		})
	}
	return groups
}
