// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/archive"
	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/logger"
	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/pipeline"
)

var planCmd = &cobra.Command{
	Use:   "plan [input]",
	Short: "Show how each chat would be chunked and split, without writing PDFs",
	Long: `Plan runs the same normalization and planning as convert but renders
nothing. For each chat it prints the chosen chunk size, the estimated
size and the file names convert would write.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlan,
}

// planRow is the JSON form of one planned chat.
type planRow struct {
	Chat        string   `json:"chat"`
	Skipped     string   `json:"skipped,omitempty"`
	Messages    int      `json:"messages"`
	AvgLength   float64  `json:"avg_length"`
	Tier        string   `json:"tier,omitempty"`
	ChunkSize   int      `json:"chunk_size"`
	Chunks      int      `json:"chunks"`
	MaxPerFile  int      `json:"max_chunks_per_file"`
	EstimatedKB float64  `json:"estimated_kb"`
	Files       []string `json:"files,omitempty"`
}

func runPlan(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		viper.Set("input", args[0])
	}
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	arc, err := archive.Load(cfg.Input)
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg, nil, pipeline.WithLogger(logger.L))
	if err != nil {
		return err
	}
	plans, err := p.PlanArchive(cmd.Context(), arc)
	if err != nil {
		return err
	}

	showAll, _ := cmd.Flags().GetBool("all")
	rows := make([]planRow, 0, len(plans))
	for _, cp := range plans {
		if cp.Skipped() && !showAll {
			continue
		}
		rows = append(rows, planRow{
			Chat:        cp.Chat,
			Skipped:     cp.SkipReason,
			Messages:    cp.Messages,
			AvgLength:   cp.Plan.AvgLength,
			Tier:        string(cp.Plan.Tier),
			ChunkSize:   cp.Plan.ChunkSize,
			Chunks:      len(cp.Plan.Chunks),
			MaxPerFile:  cp.Plan.MaxChunksPerFile,
			EstimatedKB: cp.Plan.EstimatedKB(),
			Files:       cp.Filenames,
		})
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatPlanOutput(cmd.OutOrStdout(), rows, jsonOutput)
}

func formatPlanOutput(w io.Writer, rows []planRow, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(rows) == 0 {
		fmt.Fprintln(w, "No personal chats to convert.")
		return nil
	}

	fmt.Fprintf(w, "%-30s  %8s  %6s  %6s  %6s  %10s  %s\n",
		"Chat", "Messages", "Avg", "Size", "Chunks", "Estimate", "Files")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	totalFiles := 0
	for _, r := range rows {
		chat := r.Chat
		if len([]rune(chat)) > 30 {
			chat = string([]rune(chat)[:27]) + "..."
		}
		if r.Skipped != "" {
			fmt.Fprintf(w, "%-30s  %s\n", chat, dimStyle.Render("skipped: "+r.Skipped))
			continue
		}
		estimate := humanize.IBytes(uint64(r.EstimatedKB * 1024))
		fmt.Fprintf(w, "%-30s  %8d  %6.1f  %6d  %6d  %10s  %s\n",
			chat, r.Messages, r.AvgLength, r.ChunkSize, r.Chunks, estimate, strings.Join(r.Files, ", "))
		totalFiles += len(r.Files)
	}

	fmt.Fprintf(w, "\n%d chats, %d files planned\n", len(rows), totalFiles)
	return nil
}

func init() {
	planCmd.Flags().Float64("max-size", 0, "target size per file in KB (default: 200)")
	planCmd.Flags().String("owner-name", "", "substring of the archive owner's display name")
	planCmd.Flags().String("owner-id", "", "archive owner's sender id, e.g. user123456")
	planCmd.Flags().Bool("all", false, "include skipped chats")
	planCmd.Flags().Bool("json", false, "output the plan as JSON")

	rootCmd.AddCommand(planCmd)
}
