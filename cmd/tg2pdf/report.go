// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/pipeline"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// printSummary writes the end-of-run counters.
func printSummary(w io.Writer, res pipeline.Result, outputDir, metadataFile string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Conversion summary"))
	fmt.Fprintf(w, "  %s %d\n", successStyle.Render("chats converted:"), res.Processed)
	fmt.Fprintf(w, "  %s %d\n", dimStyle.Render("chats skipped:  "), res.Skipped)
	fmt.Fprintf(w, "  %s %d\n", successStyle.Render("files written:  "), res.Files)
	if res.HasFailures() {
		fmt.Fprintf(w, "  %s %d\n", errorStyle.Render("files failed:   "), res.FailedFiles)
	}
	fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("messages:       "), humanize.Comma(int64(res.Messages)))
	fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("chunks:         "), humanize.Comma(int64(res.Chunks)))
	fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("total size:     "), humanize.IBytes(uint64(res.Bytes)))
	if res.Files > 0 {
		avg := res.Bytes / int64(res.Files)
		fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("average file:   "), humanize.IBytes(uint64(avg)))
	}
	fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("output:         "), outputDir)
	fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("metadata:       "), metadataFile)
	if res.RunID != "" {
		fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("catalog run:    "), res.RunID)
	}
}

// warnLine writes a styled warning.
func warnLine(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, warnStyle.Render("warning: "+fmt.Sprintf(format, args...)))
}
