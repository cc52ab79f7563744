package domain

import (
	"errors"
	"mime"
	"strings"
)

var ErrUnsupportedFormat = errors.New("unsupported document format")
var ErrPDFParse = errors.New("could not read PDF document")
var ErrOCR = errors.New("could not recognize text in image")

// DocumentKind is the mutually exclusive type tag of an uploaded document.
type DocumentKind string

const (
	DocPDF       DocumentKind = "pdf"
	DocImage     DocumentKind = "image"
	DocPlainText DocumentKind = "text"
)

// DetectKind classifies a declared media type into a DocumentKind. The
// declared type is authoritative: content sniffing is never attempted, so an
// unsupported declaration is rejected before any bytes are touched.
func DetectKind(mediaType string) (DocumentKind, error) {
	mt, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return "", ErrUnsupportedFormat
	}

	switch {
	case mt == "application/pdf":
		return DocPDF, nil
	case strings.HasPrefix(mt, "image/"):
		return DocImage, nil
	case mt == "text/plain" || mt == "text/markdown":
		return DocPlainText, nil
	}
	return "", ErrUnsupportedFormat
}
