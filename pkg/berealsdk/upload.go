package berealsdk

import (
	"context"
	"net/url"
)

// PostUploadURL returns pre-signed upload destinations for a new post's
// media. The actual byte upload is the caller's job; this library only
// fetches the destination.
func (s *Session) PostUploadURL(ctx context.Context, mimeType string) (*UploadURLResponse, error) {
	path := "/content/posts/upload-url"
	if mimeType != "" {
		path += "?mimeType=" + url.QueryEscape(mimeType)
	}

	var resp UploadURLResponse
	if err := s.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
