// Package tokenx decodes the compact bearer tokens issued by the BeReal
// auth service and evaluates their expiry.
//
// Tokens are the usual three dot-separated base64url segments. Only the
// header and payload are consumed here; the trailing signature segment is
// opaque and never verified locally, since trust is delegated to the
// issuing server.
package tokenx

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed reports input that cannot be split, base64-decoded and
// JSON-parsed as a two-plus-segment token. It is the only error kind Decode
// produces, so callers can reliably distinguish "corrupt input" from
// anything else.
var ErrMalformed = errors.New("tokenx: malformed token")

// Header is the decoded first token segment.
type Header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

// Payload is the decoded second token segment.
//
// The wire format duplicates the user identifier under both "uid" and
// "user_id". Both fields are decoded as-is; User resolves them into one
// value.
type Payload struct {
	jwt.RegisteredClaims

	UID              string  `json:"uid,omitempty"`
	UserID           string  `json:"user_id,omitempty"`
	PhoneCountryCode string  `json:"phone_number_country_code,omitempty"`
	ImpersonatedBy   *string `json:"impersonated_by,omitempty"`
}

// User returns the token's user identifier, preferring "uid" over the
// duplicated "user_id" wire field.
func (p *Payload) User() string {
	if p.UID != "" {
		return p.UID
	}
	return p.UserID
}

// ExpiredAt reports whether the payload's exp claim is strictly before now,
// in whole epoch seconds. A token is still valid at the exact expiry second.
// A payload without an exp claim never expires.
func (p *Payload) ExpiredAt(now time.Time) bool {
	if p.ExpiresAt == nil {
		return false
	}
	return p.ExpiresAt.Unix() < now.Unix()
}

// Decode splits token on "." and decodes the header and payload segments.
// Inputs with fewer than two segments, undecodable base64 or non-JSON
// segment bytes fail with ErrMalformed.
func Decode(token string) (Header, Payload, error) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return Header{}, Payload{}, fmt.Errorf("%w: got %d segment(s), need at least 2", ErrMalformed, len(parts))
	}

	parser := jwt.NewParser()

	headerBytes, err := parser.DecodeSegment(parts[0])
	if err != nil {
		return Header{}, Payload{}, fmt.Errorf("%w: header segment: %v", ErrMalformed, err)
	}
	var header Header
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return Header{}, Payload{}, fmt.Errorf("%w: header json: %v", ErrMalformed, err)
	}

	payloadBytes, err := parser.DecodeSegment(parts[1])
	if err != nil {
		return Header{}, Payload{}, fmt.Errorf("%w: payload segment: %v", ErrMalformed, err)
	}
	var payload Payload
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		return Header{}, Payload{}, fmt.Errorf("%w: payload json: %v", ErrMalformed, err)
	}

	return header, payload, nil
}

// IsExpired decodes token and applies the strict exp < now rule.
func IsExpired(token string, now time.Time) (bool, error) {
	_, payload, err := Decode(token)
	if err != nil {
		return false, err
	}
	return payload.ExpiredAt(now), nil
}
