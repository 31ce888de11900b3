package berealsdk

import (
	"encoding/hex"
	"fmt"
)

// Default service endpoints. Overridable per Client, mainly for tests.
const (
	DefaultAPIBaseURL    = "https://mobile.bereal.com/api"
	DefaultAuthBaseURL   = "https://auth.bereal.team"
	DefaultVonageBaseURL = "https://vonage.bereal.com"
)

// App-release constants. These mirror one specific upstream iOS build and
// are verified server-side, so they move together: when the upstream app
// revs, update the whole block.
const (
	AppBundleID    = "AlexisBarreyat.BeReal"
	AppVersion     = "3.10.1"
	AppVersionCode = "18527"
	OSVersion      = "16.6"
	Platform       = "iOS"
	AppLanguage    = "en-US"
	DeviceLanguage = "en"
	AcceptLanguage = "en-US;q=1.0"

	// Fixed OAuth client pair used by the mobile app for token grants.
	ClientID     = "ios"
	ClientSecret = "962D357B-B134-4AB6-8F53-BEA2B7255420"

	// ArkosePublicKey identifies the anti-bot challenge the verification
	// flow's data-exchange step hands back. Solving it is external to this
	// library.
	ArkosePublicKey = "CCB0863E-D45D-42E9-A6C8-9E8544E8B17E"

	signatureKeyHex = "3536303337663461663266623631363161616136353837333637393936343438"
)

var signatureKey = mustDecodeHex(signatureKeyHex)

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("berealsdk: invalid signature key constant: " + err.Error())
	}
	return b
}

// userAgent renders the templated user-agent string the app sends,
// embedding the pinned version, bundle id, build and OS version.
func userAgent() string {
	return fmt.Sprintf("BeReal/%s (%s; build:%s; iOS %s) 1.0.0/BRApriKit",
		AppVersion, AppBundleID, AppVersionCode, OSVersion)
}
