package berealsdk

import "time"

// Media is an image reference as the API returns it.
type Media struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Location is a post's geotag, present only when the author shared it.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// User is the compact user shape embedded in feeds and relationships.
type User struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Fullname       string `json:"fullname,omitempty"`
	ProfilePicture *Media `json:"profilePicture,omitempty"`
}

// Post is a single BeReal: the paired rear and front captures plus
// publishing metadata.
type Post struct {
	ID          string    `json:"id"`
	Primary     Media     `json:"primary"`
	Secondary   Media     `json:"secondary"`
	Caption     string    `json:"caption,omitempty"`
	Location    *Location `json:"location,omitempty"`
	RetakeCount int       `json:"retakeCounter"`
	IsLate      bool      `json:"isLate"`
	IsMain      bool      `json:"isMain"`
	Visibility  []string  `json:"visibility,omitempty"`
	TakenAt     time.Time `json:"takenAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Moment identifies the daily notification window a post belongs to.
type Moment struct {
	ID     string `json:"id"`
	Region string `json:"region"`
}

// UserPosts groups one user's posts for the current moment.
type UserPosts struct {
	User   User   `json:"user"`
	Region string `json:"region"`
	Moment Moment `json:"moment"`
	Posts  []Post `json:"posts"`
}

// FriendsFeed is the main feed: the caller's own posts plus each friend's.
type FriendsFeed struct {
	UserPosts         *UserPosts  `json:"userPosts"`
	FriendsPosts      []UserPosts `json:"friendsPosts"`
	RemainingPosts    int         `json:"remainingPosts"`
	MaxPostsPerMoment int         `json:"maxPostsPerMoment"`
}

// DiscoveryFeed is the public feed of posts from outside the friend graph.
type DiscoveryFeed struct {
	Posts []Post `json:"posts"`
}

// FriendsOfFriendsFeed pages through second-degree posts.
type FriendsOfFriendsFeed struct {
	Data []UserPosts `json:"data"`
	Next *string     `json:"next,omitempty"`
}

// Memory is one day's archived post pair.
type Memory struct {
	ID        string    `json:"id"`
	Primary   Media     `json:"primary"`
	Secondary Media     `json:"secondary"`
	IsLate    bool      `json:"isLate"`
	MemoryDay string    `json:"memoryDay"`
	TakenAt   time.Time `json:"takenTime"`
}

// MemoriesFeed pages through the caller's memories.
type MemoriesFeed struct {
	Data []Memory `json:"data"`
	Next *string  `json:"next,omitempty"`
}

// Person is the caller's full profile.
type Person struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	Fullname       string     `json:"fullname,omitempty"`
	Biography      string     `json:"biography,omitempty"`
	Location       string     `json:"location,omitempty"`
	PhoneNumber    string     `json:"phoneNumber,omitempty"`
	CountryCode    string     `json:"countryCode,omitempty"`
	Region         string     `json:"region,omitempty"`
	Birthdate      *time.Time `json:"birthdate,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	ProfilePicture *Media     `json:"profilePicture,omitempty"`
}

// PersonPatch is the writable subset of a profile. Nil fields are omitted
// from the wire body and left unchanged server-side.
type PersonPatch struct {
	Username  *string `json:"username,omitempty"`
	Fullname  *string `json:"fullname,omitempty"`
	Biography *string `json:"biography,omitempty"`
	Location  *string `json:"location,omitempty"`
}

// Friend is one entry in the friends or friend-request listings.
type Friend struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Fullname       string `json:"fullname,omitempty"`
	Status         string `json:"status,omitempty"`
	ProfilePicture *Media `json:"profilePicture,omitempty"`
}

// FriendsPage is a paged relationships listing.
type FriendsPage struct {
	Data  []Friend `json:"data"`
	Next  *string  `json:"next,omitempty"`
	Total int      `json:"total"`
}

// Settings is the per-user backend configuration blob.
type Settings struct {
	Stack  []string       `json:"stack,omitempty"`
	Flags  map[string]any `json:"flags,omitempty"`
	Region string         `json:"region,omitempty"`
}

// Term is one legal document and its acceptance state.
type Term struct {
	Code           string `json:"code"`
	Status         string `json:"status"`
	SignedAt       string `json:"signedAt,omitempty"`
	TermURL        string `json:"termUrl"`
	CurrentVersion string `json:"version"`
}

// TermsResponse lists every legal document for the account.
type TermsResponse struct {
	Data []Term `json:"data"`
}

// UploadSpec is a pre-signed destination for one media upload: where to PUT
// the bytes and the exact headers the storage backend expects.
type UploadSpec struct {
	URL      string            `json:"url"`
	Path     string            `json:"path"`
	Bucket   string            `json:"bucket"`
	Headers  map[string]string `json:"headers"`
	ExpireAt time.Time         `json:"expireAt"`
}

// UploadURLResponse carries the pre-signed upload destinations.
type UploadURLResponse struct {
	Data []UploadSpec `json:"data"`
}
