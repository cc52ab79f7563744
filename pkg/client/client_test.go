package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testToken = "test-token"

// newTestServer serves a minimal fake of the API: one known account, echoing
// advice endpoints, and bearer-token enforcement on gated routes.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	user := map[string]string{
		"id":          "1",
		"name":        "Alice",
		"email":       "alice@example.com",
		"skills":      "Go",
		"careerGoals": "",
	}
	authed := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
			return false
		}
		return true
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/users/signup", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["email"] == "taken@example.com" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "User with this email already exists"})
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user":  map[string]string{"id": "2", "name": req["name"], "email": req["email"]},
			"token": testToken,
		})
	})
	mux.HandleFunc("POST /api/users/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["password"] != "correct-horse" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"user": user, "token": testToken})
	})
	mux.HandleFunc("GET /api/users/profile", func(w http.ResponseWriter, r *http.Request) {
		if !authed(w, r) {
			return
		}
		_ = json.NewEncoder(w).Encode(user)
	})
	mux.HandleFunc("PUT /api/users/profile", func(w http.ResponseWriter, r *http.Request) {
		if !authed(w, r) {
			return
		}
		var req map[string]*string
		_ = json.NewDecoder(r.Body).Decode(&req)
		updated := map[string]string{}
		for k, v := range user {
			updated[k] = v
		}
		if v, ok := req["skills"]; ok && v != nil {
			updated["skills"] = *v
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"user": updated, "token": "rotated-token"})
	})
	mux.HandleFunc("POST /api/advice/career-paths", func(w http.ResponseWriter, r *http.Request) {
		if !authed(w, r) {
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"careerPaths": []map[string]string{
				{"careerTitle": "Backend Engineer", "description": "d", "salaryRange": "s", "outlook": "o"},
			},
		})
	})
	mux.HandleFunc("POST /api/resume/extract", func(w http.ResponseWriter, r *http.Request) {
		if !authed(w, r) {
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "file is required"})
			return
		}
		defer file.Close()
		_ = json.NewEncoder(w).Encode(map[string]string{"text": "extracted resume text"})
	})
	mux.HandleFunc("POST /api/contact", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Message sent successfully!"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, srv *httptest.Server, opts ...Option) *Client {
	t.Helper()
	c, err := New(srv.URL, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestSignupStartsSession(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv)

	user, err := c.Signup(context.Background(), SignupForm{
		Name:            "Bob",
		Email:           "bob@example.com",
		Password:        "longenough",
		PasswordConfirm: "longenough",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if user.Name != "Bob" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if !c.IsLoggedIn() {
		t.Fatal("expected a session after signup")
	}
}

func TestSignupValidationReportsAllProblems(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv)

	_, err := c.Signup(context.Background(), SignupForm{
		Name:            " ",
		Email:           "not-an-email",
		Password:        "short",
		PasswordConfirm: "different",
	})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Problems) != 4 {
		t.Fatalf("expected 4 problems, got %d: %v", len(ve.Problems), ve.Problems)
	}
	if c.IsLoggedIn() {
		t.Fatal("failed signup must not create a session")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv)

	_, err := c.Signup(context.Background(), SignupForm{
		Name:            "Eve",
		Email:           "taken@example.com",
		Password:        "longenough",
		PasswordConfirm: "longenough",
	})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", apiErr.Status)
	}
	if !strings.Contains(apiErr.Message, "already exists") {
		t.Fatalf("unexpected message: %q", apiErr.Message)
	}
}

func TestLoginThenProfile(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv)

	if _, err := c.Login(context.Background(), "alice@example.com", "correct-horse"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	user, err := c.Profile(context.Background())
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if user.Email != "alice@example.com" || user.Skills != "Go" {
		t.Fatalf("unexpected profile: %+v", user)
	}
}

func TestLoginFailureHasNoSession(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv)

	_, err := c.Login(context.Background(), "alice@example.com", "wrong")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 APIError, got %v", err)
	}
	if c.IsLoggedIn() {
		t.Fatal("failed login must not create a session")
	}
}

func TestGatedCallWithoutSession(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv)

	if _, err := c.Profile(context.Background()); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
}

func TestRejectedTokenClearsSession(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv)

	// Forge a session the server will not accept.
	if err := c.setSession(&Session{User: User{ID: "1"}, Token: "stale"}); err != nil {
		t.Fatalf("setSession: %v", err)
	}

	_, err := c.Profile(context.Background())
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if c.IsLoggedIn() {
		t.Fatal("rejected token must clear the session")
	}
}

func TestUpdateProfileRotatesToken(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv)

	if _, err := c.Login(context.Background(), "alice@example.com", "correct-horse"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	skills := "Go, Kubernetes"
	user, err := c.UpdateProfile(context.Background(), ProfileUpdate{Skills: &skills})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if user.Skills != "Go, Kubernetes" {
		t.Fatalf("unexpected skills: %q", user.Skills)
	}
	if got := c.Session().Token; got != "rotated-token" {
		t.Fatalf("expected rotated token, got %q", got)
	}
}

func TestCareerPaths(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv)

	if _, err := c.Login(context.Background(), "alice@example.com", "correct-horse"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	paths, err := c.CareerPaths(context.Background(), "Go")
	if err != nil {
		t.Fatalf("CareerPaths: %v", err)
	}
	if len(paths) != 1 || paths[0].CareerTitle != "Backend Engineer" {
		t.Fatalf("unexpected paths: %+v", paths)
	}
}

func TestExtractResume(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv)

	if _, err := c.Login(context.Background(), "alice@example.com", "correct-horse"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	text, err := c.ExtractResume(context.Background(), "resume.txt", "text/plain", []byte("Jane Doe"))
	if err != nil {
		t.Fatalf("ExtractResume: %v", err)
	}
	if text != "extracted resume text" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestLogoutDropsSession(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv)

	if _, err := c.Login(context.Background(), "alice@example.com", "correct-horse"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := c.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if c.IsLoggedIn() {
		t.Fatal("expected session to be gone")
	}
	if _, err := c.Profile(context.Background()); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn after logout, got %v", err)
	}
}

func TestFileSessionStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileSessionStore(path)

	srv := newTestServer(t)
	c := newTestClient(t, srv, WithSessionStore(store))

	if _, err := c.Login(context.Background(), "alice@example.com", "correct-horse"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	// A second client restores the persisted session.
	c2 := newTestClient(t, srv, WithSessionStore(store))
	if !c2.IsLoggedIn() {
		t.Fatal("expected restored session")
	}
	if got := c2.Session().User.Email; got != "alice@example.com" {
		t.Fatalf("unexpected restored user: %q", got)
	}

	if err := c2.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected session file removed, got %v", err)
	}
}

func TestFileSessionStoreCorruptFileIsCleared(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	store := NewFileSessionStore(path)
	session, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if session != nil {
		t.Fatalf("expected nil session, got %+v", session)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("expected corrupt session file to be removed")
	}
}
