// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rldyourmnd/telegram-to-pdfVectorDB/pkg/types"
)

const defaultLimit = 20

// Run is one recorded conversion run.
type Run struct {
	ID         string    `json:"id" yaml:"id"`
	Input      string    `json:"input" yaml:"input"`
	OutputDir  string    `json:"output_dir" yaml:"output_dir"`
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at,omitempty" yaml:"finished_at,omitempty"`

	types.RunStats `yaml:",inline"`
}

// Finished reports whether FinishRun was called for the run.
func (r Run) Finished() bool { return !r.FinishedAt.IsZero() }

// Hit is a chunk matching a search query.
type Hit struct {
	RunID      string `json:"run_id" yaml:"run_id"`
	Filename   string `json:"filename" yaml:"filename"`
	PersonName string `json:"person_name" yaml:"person_name"`
	PartIndex  int    `json:"part_index" yaml:"part_index"`
	PartCount  int    `json:"part_count" yaml:"part_count"`
	Seq        int    `json:"seq" yaml:"seq"`
	Snippet    string `json:"snippet" yaml:"snippet"`
}

// Search runs an FTS5 query over chunk text, best matches first. A limit of
// zero or less uses the default of 20.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT f.run_id, f.filename, f.person_name, f.part_index, f.part_count, c.seq,
			snippet(chunks_fts, 0, '[', ']', '...', 16)
		FROM chunks_fts
		JOIN chunks c ON c.rowid = chunks_fts.rowid
		JOIN files f ON f.id = c.file_id
		WHERE chunks_fts MATCH ?
		ORDER BY chunks_fts.rank
		LIMIT ?`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching catalog: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var h Hit
		if err := rows.Scan(&h.RunID, &h.Filename, &h.PersonName, &h.PartIndex, &h.PartCount, &h.Seq, &h.Snippet); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// Runs lists recorded runs, newest first.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input, output_dir, started_at, finished_at, processed, skipped,
			files, failed_files, messages, chunks, bytes
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r        Run
			started  string
			finished sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.Input, &r.OutputDir, &started, &finished,
			&r.Processed, &r.Skipped, &r.Files, &r.FailedFiles, &r.Messages, &r.Chunks, &r.Bytes); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		r.StartedAt, _ = time.Parse(timeLayout, started)
		if finished.Valid {
			r.FinishedAt, _ = time.Parse(timeLayout, finished.String)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
