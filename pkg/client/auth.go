package client

import (
	"context"
	"net/http"
	"net/mail"
	"strings"
)

// SignupForm is the input for Signup. PasswordConfirm must repeat Password
// exactly; mismatches are caught client-side before any request is sent.
type SignupForm struct {
	Name            string
	Email           string
	Password        string
	PasswordConfirm string
}

// ValidationError reports every failed form check at once.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid form: " + strings.Join(e.Problems, "; ")
}

// validate runs all checks and collects every violation rather than
// stopping at the first.
func (f SignupForm) validate() error {
	var problems []string
	if strings.TrimSpace(f.Name) == "" {
		problems = append(problems, "name is required")
	}
	if _, err := mail.ParseAddress(f.Email); err != nil {
		problems = append(problems, "email must be a valid address")
	}
	if len(f.Password) < 8 {
		problems = append(problems, "password must be at least 8 characters")
	}
	if f.Password != f.PasswordConfirm {
		problems = append(problems, "passwords do not match")
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

type authResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Signup creates an account and starts a session.
func (c *Client) Signup(ctx context.Context, form SignupForm) (*User, error) {
	if err := form.validate(); err != nil {
		return nil, err
	}

	body := map[string]string{
		"name":     form.Name,
		"email":    form.Email,
		"password": form.Password,
	}
	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/users/signup", false, body, &resp); err != nil {
		return nil, err
	}
	if err := c.setSession(&Session{User: resp.User, Token: resp.Token}); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Login authenticates and starts a session.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/users/login", false, body, &resp); err != nil {
		return nil, err
	}
	if err := c.setSession(&Session{User: resp.User, Token: resp.Token}); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Logout discards the session. Purely client-side: tokens are stateless and
// simply stop being presented.
func (c *Client) Logout() error {
	return c.setSession(nil)
}
