package service

import (
	"context"
	"errors"
	"testing"

	"github.com/careerpilot/advisor-api/internal/core/domain"
)

type stubPDFExtractor struct {
	text string
	err  error
}

func (e *stubPDFExtractor) ExtractText(context.Context, []byte) (string, error) {
	return e.text, e.err
}

type stubOCRClient struct {
	text string
	err  error
}

func (o *stubOCRClient) RecognizeText(context.Context, string, []byte) (string, error) {
	return o.text, o.err
}

func TestIngestionService_PlainText(t *testing.T) {
	svc := NewIngestionService(&stubPDFExtractor{}, &stubOCRClient{})

	text, err := svc.Extract(context.Background(), "text/plain; charset=utf-8", []byte("  line one\r\nline two\r\n"))
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if text != "line one\nline two" {
		t.Fatalf("unexpected normalized text: %q", text)
	}
}

func TestIngestionService_Markdown(t *testing.T) {
	svc := NewIngestionService(&stubPDFExtractor{}, &stubOCRClient{})

	text, err := svc.Extract(context.Background(), "text/markdown", []byte("# Resume\n"))
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if text != "# Resume" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestIngestionService_PDFDelegates(t *testing.T) {
	svc := NewIngestionService(&stubPDFExtractor{text: "page one\npage two"}, nil)

	text, err := svc.Extract(context.Background(), "application/pdf", []byte("%PDF-"))
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if text != "page one\npage two" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestIngestionService_PDFFailure(t *testing.T) {
	svc := NewIngestionService(&stubPDFExtractor{err: domain.ErrPDFParse}, nil)

	if _, err := svc.Extract(context.Background(), "application/pdf", []byte("junk")); !errors.Is(err, domain.ErrPDFParse) {
		t.Fatalf("expected ErrPDFParse, got %v", err)
	}
}

func TestIngestionService_ImageOCR(t *testing.T) {
	svc := NewIngestionService(&stubPDFExtractor{}, &stubOCRClient{text: "scanned resume"})

	text, err := svc.Extract(context.Background(), "image/png", []byte{0x89, 0x50})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if text != "scanned resume" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestIngestionService_OCRUnavailable(t *testing.T) {
	svc := NewIngestionService(&stubPDFExtractor{}, nil)

	if _, err := svc.Extract(context.Background(), "image/jpeg", []byte{0xff}); !errors.Is(err, domain.ErrOCR) {
		t.Fatalf("expected ErrOCR, got %v", err)
	}
}

func TestIngestionService_UnsupportedTypeRejectedBeforeExtraction(t *testing.T) {
	pdf := &stubPDFExtractor{err: errors.New("must not be called")}
	ocr := &stubOCRClient{err: errors.New("must not be called")}
	svc := NewIngestionService(pdf, ocr)

	for _, mt := range []string{
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"video/mp4",
		"",
	} {
		text, err := svc.Extract(context.Background(), mt, []byte("data"))
		if !errors.Is(err, domain.ErrUnsupportedFormat) {
			t.Fatalf("%q: expected ErrUnsupportedFormat, got %v", mt, err)
		}
		if text != "" {
			t.Fatalf("%q: no residual text expected, got %q", mt, text)
		}
	}
}
