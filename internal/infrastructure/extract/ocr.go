package extract

import (
	"context"
	"fmt"
	"mime"
	"strings"

	"google.golang.org/genai"

	"github.com/careerpilot/advisor-api/internal/core/domain"
)

const ocrPrompt = "Transcribe all text visible in this image. " +
	"Return only the transcribed text, preserving line breaks. " +
	"Return an empty response if the image contains no text."

// GeminiOCR recognizes text in images by sending the raw bytes to a Gemini
// vision model. It shares the API client with the Gemini advice provider.
type GeminiOCR struct {
	client *genai.Client
	model  string
}

func NewGeminiOCR(client *genai.Client, model string) *GeminiOCR {
	return &GeminiOCR{client: client, model: model}
}

func (o *GeminiOCR) RecognizeText(ctx context.Context, mediaType string, data []byte) (string, error) {
	mt, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrOCR, err)
	}

	contents := []*genai.Content{{
		Role: "user",
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: mt, Data: data}},
			{Text: ocrPrompt},
		},
	}}

	resp, err := o.client.Models.GenerateContent(ctx, o.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrOCR, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: no text recognized", domain.ErrOCR)
	}
	return text, nil
}
