package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/careerpilot/advisor-api/internal/core/domain"
)

func TestPDFExtractor_RejectsNonPDFBytes(t *testing.T) {
	e := NewPDFExtractor()

	for _, data := range [][]byte{
		nil,
		[]byte("plain text pretending to be a pdf"),
		[]byte("%PDF-1.7 truncated"),
	} {
		if _, err := e.ExtractText(context.Background(), data); !errors.Is(err, domain.ErrPDFParse) {
			t.Fatalf("expected ErrPDFParse for %q, got %v", data, err)
		}
	}
}
