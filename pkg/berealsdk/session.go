package berealsdk

import (
	"fmt"
	"time"

	"github.com/unofficialbereal/bereal-go/pkg/tokenx"
)

// Session is an authenticated session: a device identity plus a bearer
// token and its decoded payload. The decoded payload always corresponds to
// the currently held token; replacements go through UpdateAccessToken,
// which re-decodes and re-validates before anything is swapped in.
//
// A Session is owned by one logical caller at a time and is not internally
// synchronized. Callers that share one across goroutines must serialize
// access themselves.
type Session struct {
	client *Client

	accessToken  string
	refreshToken string
	claims       tokenx.Payload
	extraHeaders map[string]string

	now func() time.Time
}

// NewSession builds a session from an existing bearer token. The token is
// decoded and rejected with ErrTokenExpired if its expiry has already
// passed. Extra headers, if any, are sent on every authenticated call and
// may override the computed set.
func (c *Client) NewSession(accessToken string, extraHeaders map[string]string) (*Session, error) {
	return c.newSession(accessToken, "", extraHeaders)
}

func (c *Client) newSession(accessToken, refreshToken string, extraHeaders map[string]string) (*Session, error) {
	_, payload, err := tokenx.Decode(accessToken)
	if err != nil {
		return nil, err
	}
	if payload.ExpiredAt(time.Now()) {
		return nil, fmt.Errorf("token expired at %s: %w", payload.ExpiresAt.Time, ErrTokenExpired)
	}

	return &Session{
		client:       c,
		accessToken:  accessToken,
		refreshToken: refreshToken,
		claims:       payload,
		extraHeaders: extraHeaders,
		now:          time.Now,
	}, nil
}

// AccessToken returns the currently held bearer token.
func (s *Session) AccessToken() string { return s.accessToken }

// RefreshToken returns the held refresh token, if any. Refresh tokens are
// never expiry-checked locally; only the server decides when one dies.
func (s *Session) RefreshToken() string { return s.refreshToken }

// UserID returns the user identifier decoded from the held token.
func (s *Session) UserID() string { return s.claims.User() }

// PhoneCountryCode returns the phone country code decoded from the held
// token, or "" when the claim is absent.
func (s *Session) PhoneCountryCode() string { return s.claims.PhoneCountryCode }

// ExpiresAt returns the held token's expiry instant, or the zero time when
// the token carries no exp claim.
func (s *Session) ExpiresAt() time.Time {
	if s.claims.ExpiresAt == nil {
		return time.Time{}
	}
	return s.claims.ExpiresAt.Time
}

// IsExpired evaluates the held token's expiry against the wall clock at
// call time. It is never cached: a session can sit idle past its own expiry
// between calls, so every authenticated operation re-checks.
func (s *Session) IsExpired() bool {
	return s.claims.ExpiredAt(s.now())
}

// UpdateAccessToken replaces the held bearer token after re-decoding and
// re-validating it. On any failure — malformed input or an already-expired
// replacement — the previously held token and derived fields are left
// untouched.
func (s *Session) UpdateAccessToken(accessToken string) error {
	_, payload, err := tokenx.Decode(accessToken)
	if err != nil {
		return err
	}
	if payload.ExpiredAt(s.now()) {
		return fmt.Errorf("replacement token expired at %s: %w", payload.ExpiresAt.Time, ErrTokenExpired)
	}

	s.accessToken = accessToken
	s.claims = payload
	return nil
}
