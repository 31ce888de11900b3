package berealsdk

import "context"

// Settings returns the caller's backend settings blob.
func (s *Session) Settings(ctx context.Context) (*Settings, error) {
	var settings Settings
	if err := s.get(ctx, "/settings", &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Terms lists the account's legal documents and their acceptance state.
func (s *Session) Terms(ctx context.Context) (*TermsResponse, error) {
	var terms TermsResponse
	if err := s.get(ctx, "/terms", &terms); err != nil {
		return nil, err
	}
	return &terms, nil
}
