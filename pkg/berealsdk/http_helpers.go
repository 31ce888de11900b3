package berealsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// doJSON performs one outbound JSON call. Headers (metadata, signature and,
// when session is non-nil, bearer credentials) are assembled just before
// dispatch. Non-2xx responses come back as *APIError; transport failures
// pass through wrapped and uninterpreted. No retries, ever.
func (c *Client) doJSON(
	ctx context.Context,
	method, url string,
	session *Session,
	body any,
	extra map[string]string,
	out any,
) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	// Header assembly runs first: it carries the expiry pre-flight check and
	// stamps the time-windowed signature, so it has to happen at send time
	// and before any request object exists.
	headers, err := c.buildHeaders(session, extra)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = headers
	if body != nil {
		req.Header.Set("content-type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseErrorResponse(resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// get is the shared shape of the authenticated read endpoints.
func (s *Session) get(ctx context.Context, path string, out any) error {
	return s.client.doJSON(ctx, http.MethodGet, s.client.apiURL(path), s, nil, nil, out)
}

// patch is the shared shape of the authenticated update endpoints.
func (s *Session) patch(ctx context.Context, path string, body, out any) error {
	return s.client.doJSON(ctx, http.MethodPatch, s.client.apiURL(path), s, body, nil, out)
}
