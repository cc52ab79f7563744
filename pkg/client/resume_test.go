package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractResumeSupersededByNewerUpload(t *testing.T) {
	firstArrived := make(chan struct{})
	releaseFirst := make(chan struct{})
	calls := 0

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/resume/extract", func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			close(firstArrived)
			<-releaseFirst
			_ = json.NewEncoder(w).Encode(map[string]string{"text": "first"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"text": "second"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv)
	if err := c.setSession(&Session{User: User{ID: "1"}, Token: testToken}); err != nil {
		t.Fatalf("setSession: %v", err)
	}

	firstResult := make(chan error, 1)
	go func() {
		_, err := c.ExtractResume(context.Background(), "a.txt", "text/plain", []byte("a"))
		firstResult <- err
	}()

	<-firstArrived
	text, err := c.ExtractResume(context.Background(), "b.txt", "text/plain", []byte("b"))
	if err != nil {
		t.Fatalf("second ExtractResume: %v", err)
	}
	if text != "second" {
		t.Fatalf("unexpected text: %q", text)
	}

	close(releaseFirst)
	if err := <-firstResult; !errors.Is(err, ErrSuperseded) {
		t.Fatalf("expected ErrSuperseded for the stale upload, got %v", err)
	}
}
