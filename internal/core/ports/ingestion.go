package ports

import "context"

// PDFExtractor pulls the text layer out of a PDF document.
type PDFExtractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// OCRClient recognizes text in a raw image.
type OCRClient interface {
	RecognizeText(ctx context.Context, mediaType string, data []byte) (string, error)
}

// IngestionService converts an uploaded document with a declared media type
// into normalized plain text, or fails with one of the domain ingestion
// errors. A failed extraction is terminal: no retries.
type IngestionService interface {
	Extract(ctx context.Context, mediaType string, data []byte) (string, error)
}
