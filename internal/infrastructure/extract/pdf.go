// Package extract implements the document-to-text extraction backends used
// by the resume ingestion pipeline.
package extract

import (
	"bytes"
	"context"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/careerpilot/advisor-api/internal/core/domain"
)

// PDFExtractor pulls the text layer out of a PDF, page by page. Pages are
// concatenated with a separating line break.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractText opens the document and concatenates the text layer of every
// page. The pdf library panics on some malformed documents, so parsing runs
// behind a recover that downgrades the panic to ErrPDFParse.
func (e *PDFExtractor) ExtractText(_ context.Context, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", domain.ErrPDFParse
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", domain.ErrPDFParse
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page does not fail the document.
			continue
		}
		pages = append(pages, pageText)
	}

	return strings.Join(pages, "\n"), nil
}
