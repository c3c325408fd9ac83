// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/catalog"
	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/fonts"
	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/logger"
	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/pipeline"
	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/render"
	"github.com/rldyourmnd/telegram-to-pdfVectorDB/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input]",
	Short: "Convert a Telegram export into size-bounded PDFs",
	Long: `Convert reads a Telegram result.json (default: ./result.json), keeps the
personal chats, normalizes message text and writes one PDF per chat into
the output directory. Chats whose estimated size exceeds --max-size are
split into name_partIofN.pdf files.

A metadata summary describing every written file is saved next to the
PDFs. Set --catalog to also record the run in a searchable SQLite file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		viper.Set("input", args[0])
	}
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	opts := []pipeline.Option{
		pipeline.WithLogger(logger.L),
		pipeline.WithProgress(cmd.OutOrStdout()),
	}
	if cfg.Catalog.Path != "" {
		store, err := catalog.Open(cfg.Catalog.Path)
		if err != nil {
			warnLine(cmd.ErrOrStderr(), "catalog unavailable: %v", err)
		} else {
			defer store.Close()
			opts = append(opts, pipeline.WithRecorder(store))
		}
	}

	p, err := pipeline.New(cfg, render.NewEmitter(renderer), opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.L.Info("converting", "input", cfg.Input, "output_dir", cfg.OutputDir, "max_file_size_kb", cfg.Planner.MaxFileSizeKB)
	res, err := p.Convert(ctx)
	if res.Total() > 0 {
		printSummary(cmd.OutOrStdout(), res, cfg.OutputDir, filepath.Join(cfg.OutputDir, cfg.MetadataFile))
	}
	if err != nil {
		return err
	}

	strict, _ := cmd.Flags().GetBool("strict")
	if strict && res.HasFailures() {
		return fmt.Errorf("%d file(s) failed", res.FailedFiles)
	}
	return nil
}

// newRenderer picks a Unicode TTF font for the platform and falls back to
// the core font when none is usable.
func newRenderer(cfg types.Config) (*render.PDFRenderer, error) {
	font := fonts.Resolve(cfg.Fonts)
	if font.Embedded() {
		logger.L.Debug("using font", "path", font.Path)
		r, err := render.NewPDFRenderer(cfg.Render, font)
		if err == nil {
			return r, nil
		}
		logger.L.Warn("font unusable, falling back", "path", font.Path, "error", err)
		font = fonts.Fallback(cfg.Fonts)
	}

	logger.L.Warn("no Unicode font found; Cyrillic text will not render correctly", "fallback", font.Name)
	return render.NewPDFRenderer(cfg.Render, font)
}

func init() {
	convertCmd.Flags().StringP("output-dir", "o", "", "directory for PDFs and metadata (default: chats_clean_pdf)")
	convertCmd.Flags().String("metadata-file", "", "metadata summary file name (default: metadata_summary.json)")
	convertCmd.Flags().Float64("max-size", 0, "target size per file in KB (default: 200)")
	convertCmd.Flags().String("owner-name", "", "substring of the archive owner's display name")
	convertCmd.Flags().String("owner-id", "", "archive owner's sender id, e.g. user123456")
	convertCmd.Flags().String("catalog", "", "SQLite catalog file to record the run in")
	convertCmd.Flags().BoolP("verbose", "v", true, "print one line per written file")
	convertCmd.Flags().Bool("strict", false, "exit non-zero when any file fails to render")

	rootCmd.AddCommand(convertCmd)
}
