package berealsdk

import "context"

// FriendsFeed returns the caller's main feed for the current moment.
func (s *Session) FriendsFeed(ctx context.Context) (*FriendsFeed, error) {
	var feed FriendsFeed
	if err := s.get(ctx, "/feeds/friends-v1", &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

// DiscoveryFeed returns the public discovery feed.
func (s *Session) DiscoveryFeed(ctx context.Context) (*DiscoveryFeed, error) {
	var feed DiscoveryFeed
	if err := s.get(ctx, "/feeds/discovery", &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

// FriendsOfFriendsFeed returns second-degree posts.
func (s *Session) FriendsOfFriendsFeed(ctx context.Context) (*FriendsOfFriendsFeed, error) {
	var feed FriendsOfFriendsFeed
	if err := s.get(ctx, "/feeds/friends-of-friends", &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

// Memories returns the caller's archived daily posts.
func (s *Session) Memories(ctx context.Context) (*MemoriesFeed, error) {
	var feed MemoriesFeed
	if err := s.get(ctx, "/feeds/memories-v1", &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}
