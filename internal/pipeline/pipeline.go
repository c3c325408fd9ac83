// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs a whole archive through normalization, planning and
// rendering, one conversation at a time.
//
// Failures are contained: a conversation that fails is logged and counted,
// a file that fails does not stop its sibling parts, and only pre-flight
// problems (unreadable input, uncreatable output directory) abort the run.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/archive"
	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/classify"
	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/logger"
	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/plan"
	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/render"
	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/textnorm"
	"github.com/rldyourmnd/telegram-to-pdfVectorDB/pkg/types"
)

// ErrNoEmitter is returned by Run when the pipeline was built for planning
// only.
var ErrNoEmitter = errors.New("pipeline has no emitter")

// Recorder receives every emitted file. The catalog implements it.
type Recorder interface {
	BeginRun(ctx context.Context, input, outputDir string) (string, error)
	RecordFile(ctx context.Context, runID string, rec types.SummaryRecord, chunks []string) error
	FinishRun(ctx context.Context, runID string, st types.RunStats) error
}

// Result holds the outcome of a run.
type Result struct {
	types.RunStats
	RunID   string
	Records []types.SummaryRecord
}

// Total returns the number of personal and non-personal chats seen.
func (r Result) Total() int {
	return r.Processed + r.Skipped
}

// HasFailures reports whether any file failed to render.
func (r Result) HasFailures() bool {
	return r.FailedFiles > 0
}

// Pipeline converts archives according to one Config.
type Pipeline struct {
	cfg      types.Config
	builder  classify.Builder
	planner  *plan.Planner
	emitter  *render.Emitter
	recorder Recorder
	log      *slog.Logger
	w        io.Writer
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithRecorder records every emitted file in r.
func WithRecorder(r Recorder) Option {
	return func(p *Pipeline) { p.recorder = r }
}

// WithLogger replaces the process logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.log = l }
}

// WithProgress sets where per-conversation progress lines are written.
func WithProgress(w io.Writer) Option {
	return func(p *Pipeline) { p.w = w }
}

// New builds a Pipeline. emitter may be nil when the pipeline is only used
// for planning.
func New(cfg types.Config, emitter *render.Emitter, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	norm, err := textnorm.New(cfg.Text)
	if err != nil {
		return nil, fmt.Errorf("building normalizer: %w", err)
	}

	p := &Pipeline{
		cfg: cfg,
		builder: classify.Builder{
			Normalizer: norm,
			Owner:      classify.NewIdentity(cfg.Identity),
			MinLength:  cfg.Text.MinMessageLength,
		},
		planner: plan.New(cfg.Planner),
		emitter: emitter,
		log:     logger.L,
		w:       io.Discard,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.cfg.Log.Quiet {
		p.w = io.Discard
	}
	return p, nil
}

// Convert loads the archive at the configured input path and runs it. The
// archive is validated before the output directory is created.
func (p *Pipeline) Convert(ctx context.Context) (Result, error) {
	arc, err := archive.Load(p.cfg.Input)
	if err != nil {
		return Result{}, err
	}
	return p.Run(ctx, arc)
}

// Run converts every personal chat of arc. Cancelling ctx stops the run
// between conversations; the metadata file is still written for what was
// emitted and ctx.Err() is returned.
func (p *Pipeline) Run(ctx context.Context, arc *archive.Archive) (Result, error) {
	if p.emitter == nil {
		return Result{}, ErrNoEmitter
	}
	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating output directory %s: %w", p.cfg.OutputDir, err)
	}

	res := Result{Records: []types.SummaryRecord{}}
	p.beginRun(ctx, &res)

	var runErr error
	for _, chat := range arc.Chats.List {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		files, err := p.convertChat(ctx, chat, &res)
		if err != nil {
			p.log.Error("conversation failed", "chat", chat.DisplayName(), "error", err)
			fmt.Fprintf(p.w, "failed:  %s (%v)\n", chat.DisplayName(), err)
		}
		if files == 0 {
			res.Skipped++
			continue
		}
		res.Processed++
	}

	metaPath := filepath.Join(p.cfg.OutputDir, p.cfg.MetadataFile)
	if err := WriteMetadata(metaPath, res.Records); err != nil {
		p.log.Warn("metadata not written", "path", metaPath, "error", err)
	}

	p.finishRun(context.WithoutCancel(ctx), res)
	return res, runErr
}

// convertChat emits the files of one chat and returns how many were
// written. Render and catalog panics stay inside their part; any other
// panic is returned as an error together with the files already written.
func (p *Pipeline) convertChat(ctx context.Context, chat archive.Chat, res *Result) (files int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	name := chat.DisplayName()
	conv, reason := p.conversation(chat)
	if reason != "" {
		if chat.IsPersonal() {
			fmt.Fprintf(p.w, "skipped: %s (%s)\n", name, reason)
		} else {
			p.log.Debug("chat skipped", "chat", name, "reason", reason)
		}
		return 0, nil
	}

	person := classify.PersonFromChatName(name)
	sent, received := conv.Counts()
	pl := p.planner.Plan(conv.Messages, person.Name, p.cfg.Planner.MaxFileSizeKB)

	p.log.Debug("planned conversation",
		"chat", name,
		"messages", len(conv.Messages),
		"avg_length", pl.AvgLength,
		"tier", pl.Tier,
		"chunks", len(pl.Chunks),
		"files", len(pl.Groups),
		"estimated_kb", pl.EstimatedKB(),
	)
	if len(pl.Chunks) == 0 {
		fmt.Fprintf(p.w, "skipped: %s (no chunks)\n", name)
		return 0, nil
	}
	res.Messages += len(conv.Messages)

	for _, g := range pl.Groups {
		filename := g.Filename(name)
		path := filepath.Join(p.cfg.OutputDir, filename)

		n, err := p.emitter.Emit(g.Title(person.Name), g.Chunks, path)
		if err != nil {
			res.FailedFiles++
			p.log.Error("file failed", "file", filename, "error", err)
			fmt.Fprintf(p.w, "failed:  %s (%v)\n", filename, err)
			continue
		}

		size := fileSize(path)
		rec := types.SummaryRecord{
			Filename:            filename,
			PersonName:          person.Name,
			FirstName:           person.FirstName,
			LastName:            person.LastName,
			TelegramUsername:    person.TelegramUsername,
			OriginalChat:        name,
			IsMultipart:         g.Multipart(),
			ChunkCount:          n,
			FileSizeKB:          math.Round(float64(size)/1024*10) / 10,
			TotalMessagesInChat: len(conv.Messages),
			SentCount:           sent,
			ReceivedCount:       received,
		}
		if g.Multipart() {
			rec.PartIndex, rec.PartCount = g.Index, g.Count
		}

		files++
		res.Files++
		res.Chunks += n
		res.Bytes += size
		res.Records = append(res.Records, rec)
		p.record(ctx, res.RunID, rec, g.Chunks)

		if p.cfg.Log.Verbose {
			fmt.Fprintf(p.w, "  wrote %s (%d chunks, %.1f KB)\n", filename, n, rec.FileSizeKB)
		}
	}

	if files > 0 {
		fmt.Fprintf(p.w, "converted: %s (%d messages, %d files)\n", name, len(conv.Messages), files)
	}
	return files, nil
}

// conversation builds the normalized message list of chat. A non-empty
// reason means the chat is skipped.
func (p *Pipeline) conversation(chat archive.Chat) (types.Conversation, string) {
	if !chat.IsPersonal() {
		return types.Conversation{}, "not a personal chat"
	}
	if len(chat.Messages) == 0 {
		return types.Conversation{}, "no messages"
	}
	msgs := p.builder.Build(chat.Messages)
	if len(msgs) == 0 {
		return types.Conversation{}, "no valid messages"
	}
	return types.Conversation{Name: chat.DisplayName(), Messages: msgs}, ""
}

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

func (p *Pipeline) beginRun(ctx context.Context, res *Result) {
	if p.recorder == nil {
		return
	}
	id, err := p.recorder.BeginRun(ctx, p.cfg.Input, p.cfg.OutputDir)
	if err != nil {
		p.log.Warn("catalog disabled for this run", "error", err)
		return
	}
	res.RunID = id
}

// record hands rec to the recorder. Errors and panics are logged so the
// remaining parts of the conversation are still written.
func (p *Pipeline) record(ctx context.Context, runID string, rec types.SummaryRecord, chunks []string) {
	if p.recorder == nil || runID == "" {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			p.log.Warn("catalog record failed", "file", rec.Filename, "error", fmt.Errorf("panic: %v", r))
		}
	}()
	if err := p.recorder.RecordFile(ctx, runID, rec, chunks); err != nil {
		p.log.Warn("catalog record failed", "file", rec.Filename, "error", err)
	}
}

func (p *Pipeline) finishRun(ctx context.Context, res Result) {
	if p.recorder == nil || res.RunID == "" {
		return
	}
	if err := p.recorder.FinishRun(ctx, res.RunID, res.RunStats); err != nil {
		p.log.Warn("catalog finish failed", "run", res.RunID, "error", err)
	}
}
