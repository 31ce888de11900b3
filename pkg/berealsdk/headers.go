package berealsdk

import (
	"fmt"
	"net/http"
)

// baseHeaders returns the fixed device and app metadata sent on every
// outbound call. The signature is deliberately not part of this set: it is
// time-windowed server-side and has to be computed at send time.
func (c *Client) baseHeaders() map[string]string {
	return map[string]string{
		"user-agent":              userAgent(),
		"bereal-app-language":     AppLanguage,
		"bereal-app-version":      AppVersion,
		"bereal-app-version-code": AppVersionCode,
		"bereal-os-version":       OSVersion,
		"bereal-platform":         Platform,
		"bereal-device-language":  DeviceLanguage,
		"accept-language":         AcceptLanguage,
		"bereal-timezone":         c.timezone,
		"bereal-device-id":        c.deviceID,
	}
}

// buildHeaders assembles the full header set for one outbound call. When
// session is non-nil it first enforces the expiry precondition, then adds
// the bearer token and user id. Extra headers merge last and may override
// anything, including the computed values.
//
// Called immediately before dispatch so the embedded signature timestamp
// reflects the moment the request actually goes out.
func (c *Client) buildHeaders(session *Session, extra map[string]string) (http.Header, error) {
	if session != nil && session.IsExpired() {
		return nil, fmt.Errorf("pre-flight check: %w", ErrTokenExpired)
	}

	signature, err := c.signer.Sign(c.deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign request: %w", err)
	}

	headers := http.Header{}
	for k, v := range c.baseHeaders() {
		headers.Set(k, v)
	}
	headers.Set("bereal-signature", signature)

	if session != nil {
		headers.Set("authorization", "Bearer "+session.accessToken)
		headers.Set("bereal-user-id", session.UserID())
		for k, v := range session.extraHeaders {
			headers.Set(k, v)
		}
	}

	for k, v := range extra {
		headers.Set(k, v)
	}

	return headers, nil
}

// BuildHeaders exposes the authenticated header set for a single call. Most
// callers never need this; it exists for transports that dispatch requests
// themselves.
func (s *Session) BuildHeaders(extra map[string]string) (http.Header, error) {
	return s.client.buildHeaders(s, extra)
}
