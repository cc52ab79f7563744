package service

import (
	"context"
	"strings"

	"github.com/careerpilot/advisor-api/internal/core/domain"
	"github.com/careerpilot/advisor-api/internal/core/ports"
)

// IngestionService turns an uploaded document into normalized plain text.
// The declared media type decides the extraction path; an unsupported type
// is rejected before any extractor runs. A failed extraction is terminal.
type IngestionService struct {
	pdf ports.PDFExtractor
	ocr ports.OCRClient
}

func NewIngestionService(pdf ports.PDFExtractor, ocr ports.OCRClient) *IngestionService {
	return &IngestionService{pdf: pdf, ocr: ocr}
}

func (s *IngestionService) Extract(ctx context.Context, mediaType string, data []byte) (string, error) {
	kind, err := domain.DetectKind(mediaType)
	if err != nil {
		return "", err
	}

	var text string
	switch kind {
	case domain.DocPDF:
		text, err = s.pdf.ExtractText(ctx, data)
		if err != nil {
			return "", err
		}
	case domain.DocImage:
		if s.ocr == nil {
			return "", domain.ErrOCR
		}
		text, err = s.ocr.RecognizeText(ctx, mediaType, data)
		if err != nil {
			return "", err
		}
	case domain.DocPlainText:
		text = string(data)
	}

	return normalizeText(text), nil
}

// normalizeText canonicalizes extracted text: CRLF to LF, NULs dropped,
// outer whitespace trimmed.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\x00", "")
	return strings.TrimSpace(s)
}
