// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render writes planned chunks to documents on disk.
//
// The Emitter owns the contract the pipeline relies on: one block per
// chunk, title-only metadata, and failures reported as errors. The layout
// engine itself sits behind the Renderer interface.
package render

import (
	"fmt"
)

// Document is what a Renderer lays out: a title for the document metadata
// and text blocks in reading order.
type Document struct {
	Title  string
	Blocks []string
}

// Renderer lays out a Document into pages and persists it at path.
// Different backends implement this interface.
type Renderer interface {
	Render(doc Document, path string) error
}

// Emitter turns chunk lists into documents through a Renderer.
type Emitter struct {
	renderer Renderer
}

// NewEmitter returns an Emitter backed by r.
func NewEmitter(r Renderer) *Emitter {
	return &Emitter{renderer: r}
}

// Emit renders chunks as one document titled title at path and returns the
// number of chunks written. A panic inside the renderer is returned as an
// error. A partially written file is left in place.
func (e *Emitter) Emit(title string, chunks []string, path string) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("rendering %s: panic: %v", path, r)
		}
	}()

	if err := e.renderer.Render(Document{Title: title, Blocks: chunks}, path); err != nil {
		return 0, fmt.Errorf("rendering %s: %w", path, err)
	}
	return len(chunks), nil
}
