package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/careerpilot/advisor-api/internal/core/domain"
)

type stubAuthService struct {
	signupFn func(ctx context.Context, name, email, password string) (*domain.User, string, error)
	loginFn  func(ctx context.Context, email, password string) (*domain.User, string, error)
}

func (s *stubAuthService) Signup(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	return s.signupFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	return s.loginFn(ctx, email, password)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, name, email, password string) (*domain.User, string, error) {
			if name != "Alice" || email != "alice@example.com" || password != "hunter2hunter2" {
				t.Fatalf("unexpected args: %s %s %s", name, email, password)
			}
			return &domain.User{ID: "1", Name: name, Email: email}, "token123", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/users/signup",
		`{"name":"Alice","email":"alice@example.com","password":"hunter2hunter2"}`)

	if err := handler.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["id"] != "1" || user["name"] != "Alice" || user["email"] != "alice@example.com" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password"]; leaked {
		t.Fatal("password must not appear in the response")
	}
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, name, email, password string) (*domain.User, string, error) {
			return nil, "", domain.ErrDuplicateEmail
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/users/signup",
		`{"name":"Bob","email":"bob@example.com","password":"hunter2hunter2"}`)

	err := handler.Signup(c)
	if got := httpStatus(t, err); got != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", got)
	}
}

func TestAuthHandler_Signup_RejectsShortPassword(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, name, email, password string) (*domain.User, string, error) {
			t.Fatal("service should not be called")
			return nil, "", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/users/signup",
		`{"name":"Bob","email":"bob@example.com","password":"short"}`)

	err := handler.Signup(c)
	if got := httpStatus(t, err); got != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", got)
	}
}

func TestAuthHandler_Signup_RejectsMissingFields(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, name, email, password string) (*domain.User, string, error) {
			t.Fatal("service should not be called")
			return nil, "", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/users/signup", `{"email":"not-an-email"}`)

	err := handler.Signup(c)
	if got := httpStatus(t, err); got != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", got)
	}
	// Every violation is reported, not just the first.
	var he *echo.HTTPError
	errors.As(err, &he)
	msg, _ := he.Message.(string)
	for _, want := range []string{"name", "email", "password"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in validation message %q", want, msg)
		}
	}
}

func TestAuthHandler_Signup_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, name, email, password string) (*domain.User, string, error) {
			t.Fatal("service should not be called")
			return nil, "", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/users/signup", "not-json")

	err := handler.Signup(c)
	if got := httpStatus(t, err); got != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", got)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, string, error) {
			if email != "alice@example.com" || password != "hunter2hunter2" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.User{ID: "1", Name: "Alice", Email: email, Skills: "Go"}, "token456", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/users/login",
		`{"email":"alice@example.com","password":"hunter2hunter2"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token456" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["skills"] != "Go" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, string, error) {
			return nil, "", domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/users/login",
		`{"email":"alice@example.com","password":"wrongwrong"}`)

	err := handler.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
