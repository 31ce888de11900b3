/*
Package berealsdk is a client SDK for the undocumented BeReal mobile
backend. It signs every request the way the mobile app does, manages the
bearer token's validity window, and exposes the API surface as typed
methods.

# Client vs Session

The package is organized around two main types:

  - Client: device identity, request signing and the unauthenticated flows
    (phone verification, token grants)
  - Session: authenticated operations on top of a bearer token

Create a Client with the device id to impersonate. Device ids are supplied
by you and never generated here; reuse the same one across runs or the
backend will treat each run as a new device:

	client := berealsdk.NewClient("5f3c...-device-uuid")

# First login

Logging in a device is a three-step phone verification followed by a token
grant. The anti-bot challenge from DataExchange must be solved externally
(see ArkosePublicKey):

	flow := client.StartVerification("+61400000000")

	blob, err := flow.DataExchange(ctx)
	// ... solve the challenge externally, producing solutionToken ...

	requestID, err := flow.RequestCode(ctx, solutionToken)
	// ... user receives an SMS code ...

	result, err := flow.CheckCode(ctx, smsCode)
	session, err := client.LoginWithVerificationToken(ctx, result.Token)

# Resuming and refreshing

A refresh token survives across runs and skips the phone flow:

	session, err := client.SessionFromRefreshToken(ctx, storedRefreshToken)

Sessions do not refresh themselves. Authenticated calls made past the
token's expiry fail fast with ErrTokenExpired before any network traffic,
and the caller drives the refresh-and-retry loop:

	feed, err := session.FriendsFeed(ctx)
	if errors.Is(err, berealsdk.ErrTokenExpired) {
		if err := session.Refresh(ctx); err != nil {
			return err
		}
		feed, err = session.FriendsFeed(ctx)
	}

# Errors

  - tokenx.ErrMalformed: the bearer token string isn't a decodable token
  - ErrTokenExpired: the held token's expiry has passed
  - *APIError: any non-2xx API or provider response, raw JSON included

Transport failures pass through wrapped and uninterpreted; the SDK never
retries or backs off on its own.

# Concurrency

A Session belongs to one logical owner at a time and is not internally
synchronized. Share one across goroutines only behind your own
serialization.
*/
package berealsdk
