package berealsdk

import "context"

// Me returns the caller's profile.
func (s *Session) Me(ctx context.Context) (*Person, error) {
	var person Person
	if err := s.get(ctx, "/person/me", &person); err != nil {
		return nil, err
	}
	return &person, nil
}

// UpdateMe applies a partial profile update and returns the updated
// profile. Nil fields in the patch are left unchanged server-side.
func (s *Session) UpdateMe(ctx context.Context, patch PersonPatch) (*Person, error) {
	var person Person
	if err := s.patch(ctx, "/person/me", patch, &person); err != nil {
		return nil, err
	}
	return &person, nil
}
