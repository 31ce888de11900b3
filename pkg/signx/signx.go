// Package signx derives the time-windowed bereal-signature header value
// that the BeReal backend expects on every request.
package signx

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ErrEmptyDeviceID reports a missing device identifier.
var ErrEmptyDeviceID = errors.New("signx: empty device id")

// Generator computes per-request signatures from a device identifier, the
// shared app key and the current time. The timezone name is fixed at
// construction so signing stays deterministic under test.
type Generator struct {
	key      []byte
	timezone string
	now      func() time.Time
}

// New returns a Generator bound to the given HMAC key and IANA timezone name.
func New(key []byte, timezone string) *Generator {
	return &Generator{
		key:      key,
		timezone: timezone,
		now:      time.Now,
	}
}

// Sign produces a signature for deviceID at the current wall-clock second.
// Signatures are time-windowed server-side, so this must be called at send
// time rather than ahead of it.
func (g *Generator) Sign(deviceID string) (string, error) {
	return g.SignAt(deviceID, g.now().Unix())
}

// SignAt produces a signature for deviceID at an explicit unix timestamp.
//
// The byte layout is an upstream quirk and must not be simplified: the
// payload string is base64-encoded before it is HMAC'd, and the digest is
// prefixed with a plaintext "1:<timestamp>:" tag before the outer base64.
// Altering either step breaks server-side verification.
func (g *Generator) SignAt(deviceID string, timestamp int64) (string, error) {
	if deviceID == "" {
		return "", ErrEmptyDeviceID
	}

	ts := strconv.FormatInt(timestamp, 10)
	payload := deviceID + g.timezone + ts

	mac := hmac.New(sha256.New, g.key)
	mac.Write([]byte(base64.StdEncoding.EncodeToString([]byte(payload))))
	digest := mac.Sum(nil)

	prefix := "1:" + ts + ":"
	out := make([]byte, 0, len(prefix)+len(digest))
	out = append(out, prefix...)
	out = append(out, digest...)

	return base64.StdEncoding.EncodeToString(out), nil
}

// Timezone returns the IANA timezone name the generator signs with.
func (g *Generator) Timezone() string { return g.timezone }

var (
	tzOnce sync.Once
	tzName string
)

// LocalTimezone resolves the process-local IANA timezone name once and
// caches it for the life of the process. Resolution order: $TZ,
// /etc/timezone, the runtime's named location, then Etc/UTC.
func LocalTimezone() string {
	tzOnce.Do(func() {
		tzName = resolveTimezone()
	})
	return tzName
}

func resolveTimezone() string {
	if tz := strings.TrimSpace(os.Getenv("TZ")); tz != "" {
		return tz
	}

	if b, err := os.ReadFile("/etc/timezone"); err == nil {
		if tz := strings.TrimSpace(string(b)); tz != "" {
			return tz
		}
	}

	// time.Local.String() is usually just "Local", but some platforms
	// surface the real zone name.
	if name := time.Local.String(); name != "" && name != "Local" {
		return name
	}

	return "Etc/UTC"
}
