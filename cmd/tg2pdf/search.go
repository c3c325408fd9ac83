// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/catalog"
)

var errNoCatalog = errors.New("no catalog configured: pass --catalog or set catalog.path")

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over chunks recorded in the catalog",
	Long: `Search queries the chunk text of every file recorded in the catalog
using SQLite FTS5 syntax (e.g. "harbour AND report", "meet*").
Results show the file, the chunk number and a highlighted snippet.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List conversion runs recorded in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runRuns,
}

func openCatalog() (*catalog.Store, error) {
	path := viper.GetString("catalog.path")
	if path == "" {
		return nil, errNoCatalog
	}
	return catalog.Open(path)
}

func runSearch(cmd *cobra.Command, args []string) error {
	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	hits, err := store.Search(cmd.Context(), strings.Join(args, " "), limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(cmd.OutOrStdout(), hits, jsonOutput)
}

func formatSearchOutput(w io.Writer, hits []catalog.Hit, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(hits)
	}

	if len(hits) == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	for i, h := range hits {
		fmt.Fprintf(w, "%s %s %s\n",
			titleStyle.Render(fmt.Sprintf("%2d.", i+1)),
			h.Filename,
			dimStyle.Render(fmt.Sprintf("(chunk %d, part %d/%d)", h.Seq, h.PartIndex, h.PartCount)))
		fmt.Fprintf(w, "    %s\n", h.Snippet)
	}
	fmt.Fprintf(w, "\n%d results\n", len(hits))
	return nil
}

func runRuns(cmd *cobra.Command, args []string) error {
	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.Runs(cmd.Context(), limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatRunsOutput(cmd.OutOrStdout(), runs, jsonOutput)
}

func formatRunsOutput(w io.Writer, runs []catalog.Run, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-36s  %-16s  %6s  %6s  %6s  %10s  %s\n",
		"Run", "Started", "Chats", "Files", "Failed", "Size", "Input")
	fmt.Fprintln(w, strings.Repeat("-", 110))
	for _, r := range runs {
		failed := fmt.Sprintf("%6d", r.FailedFiles)
		if r.FailedFiles > 0 {
			failed = errorStyle.Render(failed)
		}
		started := humanize.Time(r.StartedAt)
		if !r.Finished() {
			started += "*"
		}
		fmt.Fprintf(w, "%-36s  %-16s  %6d  %6d  %s  %10s  %s\n",
			r.ID, started, r.Processed, r.Files, failed, humanize.IBytes(uint64(r.Bytes)), r.Input)
	}
	fmt.Fprintln(w, dimStyle.Render("\n* run did not finish"))
	return nil
}

func init() {
	searchCmd.Flags().String("catalog", "", "SQLite catalog file")
	searchCmd.Flags().Int("limit", 20, "maximum number of results")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	runsCmd.Flags().String("catalog", "", "SQLite catalog file")
	runsCmd.Flags().Int("limit", 20, "maximum number of runs")
	runsCmd.Flags().Bool("json", false, "output runs as JSON")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(runsCmd)
}
