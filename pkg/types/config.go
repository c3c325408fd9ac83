// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// IdentityConfig describes the archive owner. A message is outgoing when
// its sender name contains Name or its sender id equals ID.
type IdentityConfig struct {
	// Name is a substring of the owner's display name (e.g. "Danil").
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// ID is the owner's exact sender identifier (e.g. "user904048578").
	ID string `json:"id" yaml:"id" mapstructure:"id"`
}

// TextConfig holds settings for message text normalization.
type TextConfig struct {
	// MinMessageLength drops messages whose normalized text is shorter
	// than this many characters (default 2).
	MinMessageLength int `json:"min_message_length" yaml:"min_message_length" mapstructure:"min_message_length"`

	// Punctuation lists the punctuation runes kept by the filter.
	Punctuation string `json:"punctuation" yaml:"punctuation" mapstructure:"punctuation"`

	// ExtraRanges lists additional allowed rune ranges in "a-z" form,
	// single runes allowed (default "а-яёА-ЯЁ").
	ExtraRanges string `json:"extra_ranges" yaml:"extra_ranges" mapstructure:"extra_ranges"`
}

// PlannerConfig holds the tuning constants of the chunk planner. The tiers
// and the linear size estimate are empirical and meant to be retuned per
// font and locale.
type PlannerConfig struct {
	// MaxFileSizeKB is the target size budget for one output file.
	MaxFileSizeKB float64 `json:"max_file_size_kb" yaml:"max_file_size_kb" mapstructure:"max_file_size_kb"`

	// MaxMessageLength truncates each message line to this many characters.
	MaxMessageLength int `json:"max_message_length" yaml:"max_message_length" mapstructure:"max_message_length"`

	ShortThreshold  float64 `json:"short_threshold" yaml:"short_threshold" mapstructure:"short_threshold"`
	MediumThreshold float64 `json:"medium_threshold" yaml:"medium_threshold" mapstructure:"medium_threshold"`

	ShortChunkSize  int `json:"short_chunk_size" yaml:"short_chunk_size" mapstructure:"short_chunk_size"`
	MediumChunkSize int `json:"medium_chunk_size" yaml:"medium_chunk_size" mapstructure:"medium_chunk_size"`
	LongChunkSize   int `json:"long_chunk_size" yaml:"long_chunk_size" mapstructure:"long_chunk_size"`

	// KBPerChar is the estimated kilobytes one character of average
	// message length adds to a chunk.
	KBPerChar float64 `json:"kb_per_char" yaml:"kb_per_char" mapstructure:"kb_per_char"`

	// MinKBPerChunk is the floor of the per-chunk estimate.
	MinKBPerChunk float64 `json:"min_kb_per_chunk" yaml:"min_kb_per_chunk" mapstructure:"min_kb_per_chunk"`

	// SafetyPercent scales the budget before dividing by the estimate.
	SafetyPercent float64 `json:"safety_percent" yaml:"safety_percent" mapstructure:"safety_percent"`

	MinChunksPerFile int `json:"min_chunks_per_file" yaml:"min_chunks_per_file" mapstructure:"min_chunks_per_file"`
	MaxChunksPerFile int `json:"max_chunks_per_file" yaml:"max_chunks_per_file" mapstructure:"max_chunks_per_file"`

	// Separator joins message lines inside a chunk.
	Separator string `json:"separator" yaml:"separator" mapstructure:"separator"`
}

// RenderConfig holds PDF layout parameters, in points.
type RenderConfig struct {
	PageSize     string  `json:"page_size" yaml:"page_size" mapstructure:"page_size"`
	MarginLeft   float64 `json:"margin_left" yaml:"margin_left" mapstructure:"margin_left"`
	MarginRight  float64 `json:"margin_right" yaml:"margin_right" mapstructure:"margin_right"`
	MarginTop    float64 `json:"margin_top" yaml:"margin_top" mapstructure:"margin_top"`
	MarginBottom float64 `json:"margin_bottom" yaml:"margin_bottom" mapstructure:"margin_bottom"`
	FontSize     float64 `json:"font_size" yaml:"font_size" mapstructure:"font_size"`

	// Leading is the line height inside a block.
	Leading float64 `json:"leading" yaml:"leading" mapstructure:"leading"`

	// SpaceAfter and BlockSpacing are added below every block.
	SpaceAfter   float64 `json:"space_after" yaml:"space_after" mapstructure:"space_after"`
	BlockSpacing float64 `json:"block_spacing" yaml:"block_spacing" mapstructure:"block_spacing"`

	Compress bool `json:"compress" yaml:"compress" mapstructure:"compress"`
}

// FontConfig lists candidate TTF files per OS family (runtime.GOOS) and the
// core font used when none exists.
type FontConfig struct {
	SearchPaths map[string][]string `json:"search_paths" yaml:"search_paths" mapstructure:"search_paths"`
	Fallback    string              `json:"fallback" yaml:"fallback" mapstructure:"fallback"`
}

// CatalogConfig enables the SQLite run catalog when Path is set.
type CatalogConfig struct {
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// LogConfig controls diagnostics and console verbosity.
type LogConfig struct {
	Level   string `json:"level" yaml:"level" mapstructure:"level"`
	Verbose bool   `json:"verbose" yaml:"verbose" mapstructure:"verbose"`
	Quiet   bool   `json:"quiet" yaml:"quiet" mapstructure:"quiet"`
}

// Config groups every setting of a run. It is built once at startup and
// passed by value into each component.
type Config struct {
	Input        string `json:"input" yaml:"input" mapstructure:"input"`
	OutputDir    string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`
	MetadataFile string `json:"metadata_file" yaml:"metadata_file" mapstructure:"metadata_file"`

	Identity IdentityConfig `json:"identity" yaml:"identity" mapstructure:"identity"`
	Text     TextConfig     `json:"text" yaml:"text" mapstructure:"text"`
	Planner  PlannerConfig  `json:"planner" yaml:"planner" mapstructure:"planner"`
	Render   RenderConfig   `json:"render" yaml:"render" mapstructure:"render"`
	Fonts    FontConfig     `json:"fonts" yaml:"fonts" mapstructure:"fonts"`
	Catalog  CatalogConfig  `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
	Log      LogConfig      `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultConfig returns the stock configuration: 200 KB files, 25/18/12
// messages per chunk split at average lengths 50 and 150, 12..100 chunks
// per file.
func DefaultConfig() Config {
	return Config{
		Input:        "result.json",
		OutputDir:    "chats_clean_pdf",
		MetadataFile: "metadata_summary.json",
		Text: TextConfig{
			MinMessageLength: 2,
			Punctuation:      `.,!?-:;()[]"'`,
			ExtraRanges:      "а-яёА-ЯЁ",
		},
		Planner: PlannerConfig{
			MaxFileSizeKB:    200,
			MaxMessageLength: 500,
			ShortThreshold:   50,
			MediumThreshold:  150,
			ShortChunkSize:   25,
			MediumChunkSize:  18,
			LongChunkSize:    12,
			KBPerChar:        0.005,
			MinKBPerChunk:    1.2,
			SafetyPercent:    80,
			MinChunksPerFile: 12,
			MaxChunksPerFile: 100,
			Separator:        " | ",
		},
		Render: RenderConfig{
			PageSize:     "A4",
			MarginLeft:   40,
			MarginRight:  40,
			MarginTop:    40,
			MarginBottom: 40,
			FontSize:     10,
			Leading:      12,
			SpaceAfter:   4,
			BlockSpacing: 6,
			Compress:     true,
		},
		Fonts: FontConfig{
			SearchPaths: map[string][]string{
				"windows": {
					`C:/Windows/Fonts/arial.ttf`,
					`C:/Windows/Fonts/calibri.ttf`,
					`C:/Windows/Fonts/tahoma.ttf`,
				},
				"darwin": {
					"/System/Library/Fonts/Arial.ttf",
					"/System/Library/Fonts/Supplemental/Arial.ttf",
				},
				"linux": {
					"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
					"/usr/share/fonts/dejavu/DejaVuSans.ttf",
				},
			},
			Fallback: "Helvetica",
		},
		Log: LogConfig{
			Level:   "info",
			Verbose: true,
		},
	}
}

// Validate reports every setting that would make the planner or renderer
// misbehave, joined into one error.
func (c Config) Validate() error {
	var errs []error
	if c.Input == "" {
		errs = append(errs, errors.New("input path is empty"))
	}
	if c.OutputDir == "" {
		errs = append(errs, errors.New("output_dir is empty"))
	}

	p := c.Planner
	if p.MaxFileSizeKB <= 0 {
		errs = append(errs, fmt.Errorf("planner.max_file_size_kb must be positive, got %v", p.MaxFileSizeKB))
	}
	if p.MaxMessageLength <= 0 {
		errs = append(errs, fmt.Errorf("planner.max_message_length must be positive, got %d", p.MaxMessageLength))
	}
	if p.ShortThreshold > p.MediumThreshold {
		errs = append(errs, fmt.Errorf("planner.short_threshold (%v) exceeds medium_threshold (%v)", p.ShortThreshold, p.MediumThreshold))
	}
	if p.ShortChunkSize <= 0 || p.MediumChunkSize <= 0 || p.LongChunkSize <= 0 {
		errs = append(errs, errors.New("planner chunk sizes must be positive"))
	}
	if p.MinKBPerChunk <= 0 {
		errs = append(errs, fmt.Errorf("planner.min_kb_per_chunk must be positive, got %v", p.MinKBPerChunk))
	}
	if p.SafetyPercent <= 0 || p.SafetyPercent > 100 {
		errs = append(errs, fmt.Errorf("planner.safety_percent must be in (0, 100], got %v", p.SafetyPercent))
	}
	if p.MinChunksPerFile <= 0 || p.MinChunksPerFile > p.MaxChunksPerFile {
		errs = append(errs, fmt.Errorf("planner chunks-per-file bounds invalid: [%d, %d]", p.MinChunksPerFile, p.MaxChunksPerFile))
	}

	r := c.Render
	if r.FontSize <= 0 || r.Leading <= 0 {
		errs = append(errs, errors.New("render.font_size and render.leading must be positive"))
	}

	return errors.Join(errs...)
}
