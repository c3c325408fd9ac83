// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"

	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/archive"
	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/classify"
	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/plan"
)

// ChatPlan is the planning outcome for one chat without rendering.
type ChatPlan struct {
	Chat       string
	Person     classify.Person
	SkipReason string
	Messages   int
	Sent       int
	Received   int
	Plan       plan.Plan
	Filenames  []string
}

// Skipped reports whether the chat would produce no files.
func (c ChatPlan) Skipped() bool { return c.SkipReason != "" }

// PlanArchive runs message building and planning for every chat of arc
// and returns what Run would emit. Nothing is written to disk.
func (p *Pipeline) PlanArchive(ctx context.Context, arc *archive.Archive) ([]ChatPlan, error) {
	plans := make([]ChatPlan, 0, len(arc.Chats.List))
	for _, chat := range arc.Chats.List {
		if err := ctx.Err(); err != nil {
			return plans, err
		}

		name := chat.DisplayName()
		cp := ChatPlan{Chat: name}

		conv, reason := p.conversation(chat)
		if reason != "" {
			cp.SkipReason = reason
			plans = append(plans, cp)
			continue
		}

		cp.Person = classify.PersonFromChatName(name)
		cp.Messages = len(conv.Messages)
		cp.Sent, cp.Received = conv.Counts()
		cp.Plan = p.planner.Plan(conv.Messages, cp.Person.Name, p.cfg.Planner.MaxFileSizeKB)
		if len(cp.Plan.Chunks) == 0 {
			cp.SkipReason = "no chunks"
			plans = append(plans, cp)
			continue
		}
		for _, g := range cp.Plan.Groups {
			cp.Filenames = append(cp.Filenames, g.Filename(name))
		}
		plans = append(plans, cp)
	}
	return plans, nil
}
