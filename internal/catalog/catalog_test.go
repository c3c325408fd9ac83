// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build sqlite_fts5

package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rldyourmnd/telegram-to-pdfVectorDB/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "db", "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s2.Close())
}

func TestRecordAndSearch(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	runID, err := s.BeginRun(ctx, "result.json", "out")
	require.NoError(t, err)
	assert.Len(t, runID, 36)

	single := types.SummaryRecord{
		Filename:     "Anna.pdf",
		PersonName:   "Anna",
		OriginalChat: "Anna",
		ChunkCount:   2,
		FileSizeKB:   3.4,
	}
	require.NoError(t, s.RecordFile(ctx, runID, single, []string{
		"[1/2] Me: see you at the harbour tomorrow",
		"[2/2] From Anna: bring the blue umbrella",
	}))

	multi := types.SummaryRecord{
		Filename:     "Boris_part2of3.pdf",
		PersonName:   "Boris",
		OriginalChat: "Boris (work)",
		IsMultipart:  true,
		PartIndex:    2,
		PartCount:    3,
		ChunkCount:   1,
	}
	require.NoError(t, s.RecordFile(ctx, runID, multi, []string{
		"[40/60] From Boris: the harbour report is late",
	}))

	tests := []struct {
		name      string
		query     string
		wantFiles []string
	}{
		{"match in two files", "harbour", []string{"Anna.pdf", "Boris_part2of3.pdf"}},
		{"match in one file", "umbrella", []string{"Anna.pdf"}},
		{"no match", "submarine", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits, err := s.Search(ctx, tt.query, 0)
			require.NoError(t, err)

			var files []string
			for _, h := range hits {
				assert.Equal(t, runID, h.RunID)
				assert.Contains(t, h.Snippet, "["+tt.query+"]")
				files = append(files, h.Filename)
			}
			assert.ElementsMatch(t, tt.wantFiles, files)
		})
	}

	hits, err := s.Search(ctx, "umbrella", 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, 1, hits[0].PartIndex)
	assert.Equal(t, 1, hits[0].PartCount)
	assert.Equal(t, 2, hits[0].Seq)

	hits, err = s.Search(ctx, "report", 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, 2, hits[0].PartIndex)
	assert.Equal(t, 3, hits[0].PartCount)
}

func TestSearchLimit(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	runID, err := s.BeginRun(ctx, "result.json", "out")
	require.NoError(t, err)
	chunks := []string{"hello one", "hello two", "hello three", "hello four"}
	require.NoError(t, s.RecordFile(ctx, runID, types.SummaryRecord{Filename: "A.pdf"}, chunks))

	hits, err := s.Search(ctx, "hello", 2)
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestRuns(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	first, err := s.BeginRun(ctx, "a.json", "out")
	require.NoError(t, err)
	second, err := s.BeginRun(ctx, "b.json", "out")
	require.NoError(t, err)

	stats := types.RunStats{Processed: 3, Skipped: 1, Files: 4, FailedFiles: 1, Messages: 120, Chunks: 9, Bytes: 2048}
	require.NoError(t, s.FinishRun(ctx, first, stats))

	runs, err := s.Runs(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	byID := map[string]Run{}
	for _, r := range runs {
		byID[r.ID] = r
	}

	assert.True(t, byID[first].Finished())
	assert.Equal(t, stats, byID[first].RunStats)
	assert.Equal(t, "a.json", byID[first].Input)

	assert.False(t, byID[second].Finished())
	assert.Zero(t, byID[second].Files)
}

func TestRunsOrderWithinOneSecond(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	base := time.Date(2026, 3, 1, 10, 0, 5, 0, time.UTC)
	for _, r := range []struct {
		id string
		at time.Time
	}{
		{"whole-second", base},
		{"later", base.Add(100 * time.Millisecond)},
		{"earlier", base.Add(-time.Second)},
	} {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO runs (id, input, output_dir, started_at) VALUES (?, ?, ?, ?)`,
			r.id, "a.json", "out", formatTime(r.at))
		require.NoError(t, err)
	}

	runs, err := s.Runs(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "later", runs[0].ID)
	assert.Equal(t, "whole-second", runs[1].ID)
	assert.Equal(t, "earlier", runs[2].ID)
	assert.True(t, runs[1].StartedAt.Equal(base))
}

func TestFinishUnknownRun(t *testing.T) {
	s := testStore(t)
	err := s.FinishRun(context.Background(), "missing", types.RunStats{})
	assert.Error(t, err)
}
