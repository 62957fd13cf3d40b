package client

import (
	"context"
	"net/http"
)

type authResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type userResponse struct {
	User User `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Register creates an account and stores the returned session.
func (c *Client) Register(ctx context.Context, name, email, password string) (Session, error) {
	return c.authenticate(ctx, "/user/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
}

func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	return c.authenticate(ctx, "/user/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

func (c *Client) authenticate(ctx context.Context, path string, body map[string]string) (Session, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return Session{}, err
	}

	session := Session{Token: resp.Token, User: resp.User}
	if err := c.session.Save(session); err != nil {
		return Session{}, err
	}
	return session, nil
}

// Logout forgets the local session. Tokens are stateless, so the server is not contacted.
func (c *Client) Logout() error {
	return c.session.Clear()
}

func (c *Client) Me(ctx context.Context) (User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, "/user/me", nil, &resp); err != nil {
		return User{}, err
	}
	return resp.User, nil
}

// UpdateProfile also refreshes the user cached in the session.
func (c *Client) UpdateProfile(ctx context.Context, name, email string) (User, error) {
	var resp userResponse
	err := c.do(ctx, http.MethodPut, "/user/profile", map[string]string{
		"name":  name,
		"email": email,
	}, &resp)
	if err != nil {
		return User{}, err
	}

	if session, ok := c.session.Load(); ok {
		session.User = resp.User
		if err := c.session.Save(session); err != nil {
			return User{}, err
		}
	}
	return resp.User, nil
}

// ChangePassword returns the server's confirmation message.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) (string, error) {
	var resp messageResponse
	err := c.do(ctx, http.MethodPut, "/user/password", map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}
