package client

import "context"

// SignupRequest represents a registration request
type SignupRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name,omitempty"`
}

// loginRequest represents a login request
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse wraps the account returned by signup, login and me
type AuthResponse struct {
	User *Account `json:"user"`
}

// Signup creates a new account. The session token from the response cookie
// is kept for subsequent requests.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*Account, error) {
	var resp AuthResponse
	if err := c.doRequest(ctx, "POST", "/auth/signup", req, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Login authenticates with email and password. The session token from the
// response cookie is kept for subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) (*Account, error) {
	var resp AuthResponse
	if err := c.doRequest(ctx, "POST", "/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Logout ends the session and clears the stored token
func (c *Client) Logout(ctx context.Context) error {
	if err := c.doRequest(ctx, "POST", "/auth/logout", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// Me returns the authenticated account with its subscription summary
func (c *Client) Me(ctx context.Context) (*Account, error) {
	var resp AuthResponse
	if err := c.doRequest(ctx, "GET", "/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// DeleteAccount deletes the authenticated account and everything it owns
func (c *Client) DeleteAccount(ctx context.Context) error {
	if err := c.doRequest(ctx, "DELETE", "/auth/me", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}
