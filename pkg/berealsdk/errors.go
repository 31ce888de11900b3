package berealsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrTokenExpired reports a bearer token whose exp claim has passed. It is
// raised at session construction, on UpdateAccessToken, and as a pre-flight
// check before every authenticated call. It is not retryable in place; the
// caller must obtain a fresh token (usually via Session.Refresh) first.
var ErrTokenExpired = errors.New("berealsdk: access token expired")

// ErrNoRefreshToken reports a refresh attempt on a session that was built
// without a refresh token.
var ErrNoRefreshToken = errors.New("berealsdk: no refresh token held")

// APIError is a non-2xx response from the BeReal API or one of its auth
// providers, surfaced as-is. Body carries the raw JSON so callers can pull
// provider-specific fields this library doesn't model.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Body       json.RawMessage
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch {
	case e.Code != "" && e.Message != "":
		return fmt.Sprintf("berealsdk: api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	case e.Message != "":
		return fmt.Sprintf("berealsdk: api error %d: %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("berealsdk: api error %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
}

// parseErrorResponse turns a non-2xx response body into an *APIError. The
// backends answer in a few different JSON shapes; each is tried in turn and
// an undecodable body still yields a usable error with the raw bytes kept.
func parseErrorResponse(statusCode int, body []byte) error {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       json.RawMessage(body),
	}

	// OAuth-style: {"error": "...", "error_description": "..."}
	var oauthShape struct {
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &oauthShape); err == nil && oauthShape.Error != "" {
		apiErr.Code = oauthShape.Error
		apiErr.Message = oauthShape.ErrorDescription
		return apiErr
	}

	// API-style: {"errorKey": "...", "error": "...", "message": "..."}
	var apiShape struct {
		ErrorKey string `json:"errorKey"`
		Message  string `json:"message"`
	}
	if err := json.Unmarshal(body, &apiShape); err == nil && (apiShape.ErrorKey != "" || apiShape.Message != "") {
		apiErr.Code = apiShape.ErrorKey
		apiErr.Message = apiShape.Message
		return apiErr
	}

	// Vonage-style: {"status": "...", "errorText": "..."}
	var vonageShape struct {
		Status    string `json:"status"`
		ErrorText string `json:"errorText"`
	}
	if err := json.Unmarshal(body, &vonageShape); err == nil && vonageShape.ErrorText != "" {
		apiErr.Code = vonageShape.Status
		apiErr.Message = vonageShape.ErrorText
		return apiErr
	}

	return apiErr
}
