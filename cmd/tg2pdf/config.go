// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/rldyourmnd/telegram-to-pdfVectorDB/pkg/types"
)

// flagKeys maps command-line flags to configuration keys. A flag that is
// set overrides the config file and the environment.
var flagKeys = map[string]string{
	"log-level":     "log.level",
	"quiet":         "log.quiet",
	"verbose":       "log.verbose",
	"output-dir":    "output_dir",
	"metadata-file": "metadata_file",
	"max-size":      "planner.max_file_size_kb",
	"owner-name":    "identity.name",
	"owner-id":      "identity.id",
	"catalog":       "catalog.path",
}

// bindFlags binds the flags of the running command. Binding happens per
// command because several commands share flag names.
func bindFlags(cmd *cobra.Command) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

// configureEnv enables TG2PDF_* overrides, e.g. TG2PDF_PLANNER_MAX_FILE_SIZE_KB.
func configureEnv(v *viper.Viper) {
	v.SetEnvPrefix("TG2PDF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// setDefaults registers every key with its stock value so that environment
// overrides resolve and Unmarshal sees the full tree.
func setDefaults(v *viper.Viper) {
	d := types.DefaultConfig()

	v.SetDefault("input", d.Input)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("metadata_file", d.MetadataFile)

	v.SetDefault("identity.name", d.Identity.Name)
	v.SetDefault("identity.id", d.Identity.ID)

	v.SetDefault("text.min_message_length", d.Text.MinMessageLength)
	v.SetDefault("text.punctuation", d.Text.Punctuation)
	v.SetDefault("text.extra_ranges", d.Text.ExtraRanges)

	p := d.Planner
	v.SetDefault("planner.max_file_size_kb", p.MaxFileSizeKB)
	v.SetDefault("planner.max_message_length", p.MaxMessageLength)
	v.SetDefault("planner.short_threshold", p.ShortThreshold)
	v.SetDefault("planner.medium_threshold", p.MediumThreshold)
	v.SetDefault("planner.short_chunk_size", p.ShortChunkSize)
	v.SetDefault("planner.medium_chunk_size", p.MediumChunkSize)
	v.SetDefault("planner.long_chunk_size", p.LongChunkSize)
	v.SetDefault("planner.kb_per_char", p.KBPerChar)
	v.SetDefault("planner.min_kb_per_chunk", p.MinKBPerChunk)
	v.SetDefault("planner.safety_percent", p.SafetyPercent)
	v.SetDefault("planner.min_chunks_per_file", p.MinChunksPerFile)
	v.SetDefault("planner.max_chunks_per_file", p.MaxChunksPerFile)
	v.SetDefault("planner.separator", p.Separator)

	r := d.Render
	v.SetDefault("render.page_size", r.PageSize)
	v.SetDefault("render.margin_left", r.MarginLeft)
	v.SetDefault("render.margin_right", r.MarginRight)
	v.SetDefault("render.margin_top", r.MarginTop)
	v.SetDefault("render.margin_bottom", r.MarginBottom)
	v.SetDefault("render.font_size", r.FontSize)
	v.SetDefault("render.leading", r.Leading)
	v.SetDefault("render.space_after", r.SpaceAfter)
	v.SetDefault("render.block_spacing", r.BlockSpacing)
	v.SetDefault("render.compress", r.Compress)

	v.SetDefault("fonts.search_paths", d.Fonts.SearchPaths)
	v.SetDefault("fonts.fallback", d.Fonts.Fallback)

	v.SetDefault("catalog.path", d.Catalog.Path)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.verbose", d.Log.Verbose)
	v.SetDefault("log.quiet", d.Log.Quiet)
}

// loadConfig decodes and validates the effective configuration.
func loadConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Config prints the configuration tg2pdf would run with after merging
defaults, the config file, TG2PDF_* environment variables and flags.
The output is a valid config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encoding configuration: %w", err)
		}
		return enc.Close()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
