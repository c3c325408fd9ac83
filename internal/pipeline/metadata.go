// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rldyourmnd/telegram-to-pdfVectorDB/pkg/types"
)

// WriteMetadata writes records to path as an indented JSON array. Non-ASCII
// text is written as-is. A nil slice is written as [].
func WriteMetadata(path string, records []types.SummaryRecord) error {
	if records == nil {
		records = []types.SummaryRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}
	return nil
}

// ReadMetadata loads a metadata file written by WriteMetadata.
func ReadMetadata(path string) ([]types.SummaryRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading metadata: %w", err)
	}
	var records []types.SummaryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing metadata %s: %w", path, err)
	}
	return records, nil
}
