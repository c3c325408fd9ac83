// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"

	"github.com/rldyourmnd/telegram-to-pdfVectorDB/internal/fonts"
	"github.com/rldyourmnd/telegram-to-pdfVectorDB/pkg/types"
)

// PDFRenderer lays out documents with fpdf. Sizes are in points.
type PDFRenderer struct {
	cfg      types.RenderConfig
	font     fonts.Font
	fontData []byte
}

// NewPDFRenderer loads the TTF file of an embedded font once so that every
// document reuses it. Core fonts need no file.
func NewPDFRenderer(cfg types.RenderConfig, font fonts.Font) (*PDFRenderer, error) {
	r := &PDFRenderer{cfg: cfg, font: font}
	if font.Embedded() {
		data, err := os.ReadFile(font.Path)
		if err != nil {
			return nil, fmt.Errorf("reading font %s: %w", font.Path, err)
		}
		r.fontData = data
	}
	return r, nil
}

// Font returns the font the renderer uses.
func (r *PDFRenderer) Font() fonts.Font { return r.font }

// Render implements Renderer. Only the title is written to the document
// info dictionary; author, subject, keywords, creator and producer stay
// blank.
func (r *PDFRenderer) Render(doc Document, path string) error {
	c := r.cfg
	pageSize := c.PageSize
	if pageSize == "" {
		pageSize = "A4"
	}

	pdf := fpdf.New("P", "pt", pageSize, "")
	pdf.SetCompression(c.Compress)
	pdf.SetMargins(c.MarginLeft, c.MarginTop, c.MarginRight)
	pdf.SetAutoPageBreak(true, c.MarginBottom)

	pdf.SetTitle(doc.Title, true)
	pdf.SetAuthor("", false)
	pdf.SetSubject("", false)
	pdf.SetKeywords("", false)
	pdf.SetCreator("", false)
	pdf.SetProducer("", false)

	translate := func(s string) string { return s }
	if r.font.Embedded() {
		pdf.AddUTF8FontFromBytes(r.font.Name, "", r.fontData)
	} else {
		translate = pdf.UnicodeTranslatorFromDescriptor("")
	}
	pdf.SetFont(r.font.Name, "", c.FontSize)

	pdf.AddPage()
	for _, block := range doc.Blocks {
		pdf.MultiCell(0, c.Leading, translate(block), "", "L", false)
		pdf.Ln(c.SpaceAfter + c.BlockSpacing)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.OutputFileAndClose(path)
}
