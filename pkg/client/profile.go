package client

import (
	"context"
	"net/http"
)

// ProfileUpdate is a partial profile update. Nil fields keep their stored
// value; pointing Skills or CareerGoals at "" clears them. Name only changes
// when set to a non-empty value.
type ProfileUpdate struct {
	Name        *string `json:"name,omitempty"`
	Skills      *string `json:"skills,omitempty"`
	CareerGoals *string `json:"careerGoals,omitempty"`
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodGet, "/api/users/profile", true, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies a partial update. The server re-issues the token,
// and the session is refreshed with both the new user and the new token.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*User, error) {
	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPut, "/api/users/profile", true, update, &resp); err != nil {
		return nil, err
	}
	if err := c.setSession(&Session{User: resp.User, Token: resp.Token}); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Contact sends a contact-form message. No session required.
func (c *Client) Contact(ctx context.Context, name, email, message string) error {
	body := map[string]string{"name": name, "email": email, "message": message}
	return c.doJSON(ctx, http.MethodPost, "/api/contact", false, body, nil)
}
