package berealsdk_test

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/unofficialbereal/bereal-go/pkg/berealsdk"
	"github.com/unofficialbereal/bereal-go/pkg/tokenx"
)

func makeToken(t *testing.T, payload tokenx.Payload) string {
	t.Helper()

	encode := func(v any) string {
		b, err := json.Marshal(v)
		require.NoError(t, err)
		return base64.RawURLEncoding.EncodeToString(b)
	}

	header := tokenx.Header{Alg: "RS256", Typ: "JWT"}
	return encode(header) + "." + encode(payload) + ".unverified-signature"
}

func userToken(t *testing.T, uid string, exp time.Time) string {
	t.Helper()
	return makeToken(t, tokenx.Payload{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://auth.bereal.team",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		UID:              uid,
		UserID:           uid,
		PhoneCountryCode: "au",
	})
}

func TestNewSession(t *testing.T) {
	client := berealsdk.NewClient("dev-1")

	t.Run("valid token", func(t *testing.T) {
		exp := time.Now().Add(time.Hour)
		session, err := client.NewSession(userToken(t, "u123", exp), nil)
		require.NoError(t, err)

		require.Equal(t, "u123", session.UserID())
		require.Equal(t, "au", session.PhoneCountryCode())
		require.Equal(t, exp.Unix(), session.ExpiresAt().Unix())
		require.False(t, session.IsExpired())
		require.Empty(t, session.RefreshToken())
	})

	t.Run("already expired", func(t *testing.T) {
		_, err := client.NewSession(userToken(t, "u123", time.Now().Add(-time.Minute)), nil)
		require.ErrorIs(t, err, berealsdk.ErrTokenExpired)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := client.NewSession("not-a-token", nil)
		require.ErrorIs(t, err, tokenx.ErrMalformed)
	})
}

func TestUpdateAccessToken(t *testing.T) {
	client := berealsdk.NewClient("dev-1")

	newValidSession := func(t *testing.T) *berealsdk.Session {
		s, err := client.NewSession(userToken(t, "u123", time.Now().Add(time.Hour)), nil)
		require.NoError(t, err)
		return s
	}

	t.Run("valid replacement swaps everything", func(t *testing.T) {
		session := newValidSession(t)
		newExp := time.Now().Add(2 * time.Hour)
		replacement := userToken(t, "u456", newExp)

		require.NoError(t, session.UpdateAccessToken(replacement))
		require.Equal(t, replacement, session.AccessToken())
		require.Equal(t, "u456", session.UserID())
		require.Equal(t, newExp.Unix(), session.ExpiresAt().Unix())
	})

	t.Run("expired replacement leaves session untouched", func(t *testing.T) {
		session := newValidSession(t)
		original := session.AccessToken()
		originalExp := session.ExpiresAt()

		err := session.UpdateAccessToken(userToken(t, "u456", time.Now().Add(-time.Minute)))
		require.ErrorIs(t, err, berealsdk.ErrTokenExpired)

		require.Equal(t, original, session.AccessToken())
		require.Equal(t, "u123", session.UserID())
		require.Equal(t, originalExp, session.ExpiresAt())
	})

	t.Run("malformed replacement leaves session untouched", func(t *testing.T) {
		session := newValidSession(t)
		original := session.AccessToken()

		err := session.UpdateAccessToken("garbage")
		require.ErrorIs(t, err, tokenx.ErrMalformed)

		require.Equal(t, original, session.AccessToken())
		require.Equal(t, "u123", session.UserID())
	})
}

func TestBuildHeaders(t *testing.T) {
	client := berealsdk.NewClient("dev-1")
	session, err := client.NewSession(userToken(t, "u123", time.Now().Add(time.Hour)), nil)
	require.NoError(t, err)

	t.Run("authenticated set", func(t *testing.T) {
		headers, err := session.BuildHeaders(nil)
		require.NoError(t, err)

		require.Equal(t, "Bearer "+session.AccessToken(), headers.Get("authorization"))
		require.Equal(t, "u123", headers.Get("bereal-user-id"))
		require.Equal(t, "dev-1", headers.Get("bereal-device-id"))

		for _, name := range []string{
			"bereal-signature",
			"user-agent",
			"bereal-app-language",
			"bereal-os-version",
			"bereal-app-version",
			"bereal-timezone",
			"bereal-platform",
			"bereal-app-version-code",
			"bereal-device-language",
			"accept-language",
		} {
			require.NotEmpty(t, headers.Get(name), "header %s", name)
		}
	})

	t.Run("signature envelope decodes", func(t *testing.T) {
		headers, err := session.BuildHeaders(nil)
		require.NoError(t, err)

		raw, err := base64.StdEncoding.DecodeString(headers.Get("bereal-signature"))
		require.NoError(t, err)
		require.Equal(t, "1:", string(raw[:2]))
	})

	t.Run("extra headers override", func(t *testing.T) {
		headers, err := session.BuildHeaders(map[string]string{
			"bereal-app-version": "9.9.9",
			"x-custom":           "yes",
		})
		require.NoError(t, err)
		require.Equal(t, "9.9.9", headers.Get("bereal-app-version"))
		require.Equal(t, "yes", headers.Get("x-custom"))
	})

	t.Run("session extra headers ride along", func(t *testing.T) {
		withExtras, err := client.NewSession(
			userToken(t, "u123", time.Now().Add(time.Hour)),
			map[string]string{"x-session": "sticky"},
		)
		require.NoError(t, err)

		headers, err := withExtras.BuildHeaders(nil)
		require.NoError(t, err)
		require.Equal(t, "sticky", headers.Get("x-session"))
	})
}
