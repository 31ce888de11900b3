package berealsdk

import (
	"net/http"
	"strings"
	"time"

	"github.com/unofficialbereal/bereal-go/pkg/signx"
)

// Client is an unauthenticated client for the BeReal mobile backend. It
// carries the device identity, the per-request signer and the endpoint
// bases, and creates authenticated Sessions once a bearer token is in hand.
//
// The device id is supplied by the caller and immutable for the life of the
// client; this library never generates one.
type Client struct {
	APIBaseURL    string
	AuthBaseURL   string
	VonageBaseURL string
	HTTPClient    *http.Client

	deviceID string
	timezone string
	signer   *signx.Generator
}

// NewClient returns a client bound to deviceID. The local IANA timezone is
// resolved once here and reused for both signing and the bereal-timezone
// header.
func NewClient(deviceID string) *Client {
	tz := signx.LocalTimezone()
	return &Client{
		APIBaseURL:    DefaultAPIBaseURL,
		AuthBaseURL:   DefaultAuthBaseURL,
		VonageBaseURL: DefaultVonageBaseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		deviceID: deviceID,
		timezone: tz,
		signer:   signx.New(signatureKey, tz),
	}
}

// DeviceID returns the device identity the client was constructed with.
func (c *Client) DeviceID() string { return c.deviceID }

// Timezone returns the timezone name resolved at construction.
func (c *Client) Timezone() string { return c.timezone }

// apiURL joins path onto the API base.
func (c *Client) apiURL(path string) string {
	return strings.TrimSuffix(c.APIBaseURL, "/") + path
}

// authURL joins path onto the auth service base.
func (c *Client) authURL(path string) string {
	return strings.TrimSuffix(c.AuthBaseURL, "/") + path
}

// vonageURL joins path onto the verification provider base.
func (c *Client) vonageURL(path string) string {
	return strings.TrimSuffix(c.VonageBaseURL, "/") + path
}
