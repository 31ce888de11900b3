package berealsdk

import (
	"context"
	"fmt"
)

// RequestDirection selects which side of the friend-request listing to read.
type RequestDirection string

const (
	RequestsReceived RequestDirection = "received"
	RequestsSent     RequestDirection = "sent"
)

// Friends returns the caller's friends list.
func (s *Session) Friends(ctx context.Context) (*FriendsPage, error) {
	var page FriendsPage
	if err := s.get(ctx, "/relationships/friends", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// FriendRequests returns pending friend requests in the given direction.
func (s *Session) FriendRequests(ctx context.Context, direction RequestDirection) (*FriendsPage, error) {
	if direction != RequestsReceived && direction != RequestsSent {
		return nil, fmt.Errorf("berealsdk: unknown request direction %q", direction)
	}

	var page FriendsPage
	if err := s.get(ctx, "/relationships/friend-requests/"+string(direction), &page); err != nil {
		return nil, err
	}
	return &page, nil
}
