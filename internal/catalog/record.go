// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rldyourmnd/telegram-to-pdfVectorDB/pkg/types"
)

// timeLayout is fixed width so timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// BeginRun inserts a new run row and returns its id.
func (s *Store) BeginRun(ctx context.Context, input, outputDir string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, input, output_dir, started_at) VALUES (?, ?, ?, ?)`,
		id, input, outputDir, formatTime(time.Now()),
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}
	return id, nil
}

// RecordFile stores one emitted file and its chunks in a single
// transaction.
func (s *Store) RecordFile(ctx context.Context, runID string, rec types.SummaryRecord, chunks []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	part, parts := rec.PartIndex, rec.PartCount
	if !rec.IsMultipart {
		part, parts = 1, 1
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO files (run_id, filename, original_chat, person_name, part_index, part_count, chunk_count, file_size_kb)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, rec.Filename, rec.OriginalChat, rec.PersonName, part, parts, rec.ChunkCount, rec.FileSizeKB,
	)
	if err != nil {
		return fmt.Errorf("inserting file %s: %w", rec.Filename, err)
	}
	fileID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading file id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO chunks (file_id, seq, content) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range chunks {
		if _, err := stmt.ExecContext(ctx, fileID, i+1, c); err != nil {
			return fmt.Errorf("inserting chunk %d of %s: %w", i+1, rec.Filename, err)
		}
	}

	return tx.Commit()
}

// FinishRun stores the final counters of a run.
func (s *Store) FinishRun(ctx context.Context, runID string, st types.RunStats) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, processed = ?, skipped = ?, files = ?,
			failed_files = ?, messages = ?, chunks = ?, bytes = ?
		 WHERE id = ?`,
		formatTime(time.Now()),
		st.Processed, st.Skipped, st.Files, st.FailedFiles, st.Messages, st.Chunks, st.Bytes,
		runID,
	)
	if err != nil {
		return fmt.Errorf("updating run %s: %w", runID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("run %s not found", runID)
	}
	return nil
}
