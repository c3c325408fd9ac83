// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SummaryRecord describes one emitted file. The full list is written to the
// metadata file at the end of a run so downstream pipelines can attach
// person identity to each document.
type SummaryRecord struct {
	Filename         string `json:"filename" yaml:"filename"`
	PersonName       string `json:"person_name" yaml:"person_name"`
	FirstName        string `json:"first_name" yaml:"first_name"`
	LastName         string `json:"last_name" yaml:"last_name"`
	TelegramUsername string `json:"telegram_username" yaml:"telegram_username"`
	OriginalChat     string `json:"original_chat" yaml:"original_chat"`
	IsMultipart      bool   `json:"is_multipart" yaml:"is_multipart"`

	// PartIndex and PartCount are set only for multi-part output.
	PartIndex int `json:"part_index,omitempty" yaml:"part_index,omitempty"`
	PartCount int `json:"part_count,omitempty" yaml:"part_count,omitempty"`

	ChunkCount          int     `json:"chunk_count" yaml:"chunk_count"`
	FileSizeKB          float64 `json:"file_size_kb" yaml:"file_size_kb"`
	TotalMessagesInChat int     `json:"total_messages_in_chat" yaml:"total_messages_in_chat"`
	SentCount           int     `json:"sent_count" yaml:"sent_count"`
	ReceivedCount       int     `json:"received_count" yaml:"received_count"`
}

// RunStats holds the aggregate counters of one conversion run.
type RunStats struct {
	Processed   int   `json:"processed" yaml:"processed"`
	Skipped     int   `json:"skipped" yaml:"skipped"`
	Files       int   `json:"files" yaml:"files"`
	FailedFiles int   `json:"failed_files" yaml:"failed_files"`
	Messages    int   `json:"messages" yaml:"messages"`
	Chunks      int   `json:"chunks" yaml:"chunks"`
	Bytes       int64 `json:"bytes" yaml:"bytes"`
}
