package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
)

// ErrSuperseded is returned when a newer ExtractResume call started before
// this one finished. The result is discarded; only the latest upload wins.
var ErrSuperseded = errors.New("extraction superseded by a newer upload")

// ExtractResume uploads a document and returns its extracted text. Starting
// a second extraction invalidates any still-running earlier one: the stale
// call returns ErrSuperseded even if its request succeeded.
func (c *Client) ExtractResume(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	gen := c.extractGen.Add(1)

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("client: build upload: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("client: build upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("client: build upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/resume/extract", body)
	if err != nil {
		return "", fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	token := c.token()
	if token == "" {
		return "", ErrNotLoggedIn
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var resp struct {
		Text string `json:"text"`
	}
	if err := c.send(req, true, &resp); err != nil {
		return "", err
	}

	if c.extractGen.Load() != gen {
		return "", ErrSuperseded
	}
	return resp.Text, nil
}
