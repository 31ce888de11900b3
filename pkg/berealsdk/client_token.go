package berealsdk

import (
	"context"
	"net/http"
)

// TokenResponse is the auth service's answer to a token grant.
type TokenResponse struct {
	TokenType    string `json:"token_type"`
	AccessToken  string `json:"access_token"`
	ExpiresIn    int    `json:"expires_in"`
	Scope        string `json:"scope"`
	RefreshToken string `json:"refresh_token"`
}

// FirebaseGrant exchanges the short-lived verification token from
// VerificationFlow.CheckCode for a bearer/refresh token pair. Used once per
// first login on a device.
func (c *Client) FirebaseGrant(ctx context.Context, verificationToken string) (*TokenResponse, error) {
	body := map[string]string{
		"client_id":     ClientID,
		"client_secret": ClientSecret,
		"grant_type":    "firebase",
		"token":         verificationToken,
	}

	var resp TokenResponse
	if err := c.doJSON(ctx, http.MethodPost, c.authURL("/token"), nil, body, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RefreshGrant exchanges a refresh token for a fresh bearer/refresh token
// pair, skipping interactive phone verification.
func (c *Client) RefreshGrant(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	body := map[string]string{
		"client_id":     ClientID,
		"client_secret": ClientSecret,
		"grant_type":    "refresh_token",
		"refresh_token": refreshToken,
	}

	var resp TokenResponse
	if err := c.doJSON(ctx, http.MethodPost, c.authURL("/token"), nil, body, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LoginWithVerificationToken runs the firebase grant and wraps the result
// in an authenticated session.
func (c *Client) LoginWithVerificationToken(ctx context.Context, verificationToken string) (*Session, error) {
	resp, err := c.FirebaseGrant(ctx, verificationToken)
	if err != nil {
		return nil, err
	}
	return c.newSession(resp.AccessToken, resp.RefreshToken, nil)
}

// SessionFromRefreshToken builds an authenticated session from a stored
// refresh token, for callers resuming a previous login.
func (c *Client) SessionFromRefreshToken(ctx context.Context, refreshToken string) (*Session, error) {
	resp, err := c.RefreshGrant(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	return c.newSession(resp.AccessToken, resp.RefreshToken, nil)
}

// Refresh exchanges the held refresh token for a new bearer token and
// installs it. Nothing here happens automatically: authenticated calls fail
// fast with ErrTokenExpired and the caller decides when to drive a refresh.
func (s *Session) Refresh(ctx context.Context) error {
	if s.refreshToken == "" {
		return ErrNoRefreshToken
	}

	resp, err := s.client.RefreshGrant(ctx, s.refreshToken)
	if err != nil {
		return err
	}
	if err := s.UpdateAccessToken(resp.AccessToken); err != nil {
		return err
	}

	// Swap the refresh token only after the bearer swap validated; a failed
	// update must leave the whole session as it was.
	if resp.RefreshToken != "" {
		s.refreshToken = resp.RefreshToken
	}
	return nil
}
