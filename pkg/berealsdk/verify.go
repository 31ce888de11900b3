package berealsdk

import (
	"context"
	"errors"
	"net/http"
)

// VerificationFlow drives the three-step phone-ownership exchange with the
// SMS verification provider. Steps run in order: DataExchange, RequestCode,
// CheckCode; the resulting verification token then goes through
// Client.FirebaseGrant (or LoginWithVerificationToken).
//
// There is no retry and no rollback. A step failure surfaces the raw
// provider error and leaves the flow instance unusable for this attempt;
// start a fresh flow to try again.
type VerificationFlow struct {
	client *Client

	phoneNumber     string
	dataExchange    string
	vonageRequestID string
}

// StartVerification begins a verification flow for a phone number in E.164
// form (e.g. "+61400000000").
func (c *Client) StartVerification(phoneNumber string) *VerificationFlow {
	return &VerificationFlow{
		client:      c,
		phoneNumber: phoneNumber,
	}
}

// DataExchange obtains the opaque anti-bot challenge blob for the phone
// number. The caller must solve the challenge externally (see
// ArkosePublicKey) and feed the solution token to RequestCode.
func (f *VerificationFlow) DataExchange(ctx context.Context) (string, error) {
	body := map[string]string{
		"phoneNumber": f.phoneNumber,
	}

	var resp struct {
		DataExchange string `json:"dataExchange"`
	}
	err := f.client.doJSON(ctx, http.MethodPost, f.client.vonageURL("/data-exchange"), nil, body, nil, &resp)
	if err != nil {
		return "", err
	}

	f.dataExchange = resp.DataExchange
	return resp.DataExchange, nil
}

// RequestCode asks the provider to send a verification code over SMS,
// presenting the challenge solution token(s). It returns the request
// correlation id, which is also retained for CheckCode.
func (f *VerificationFlow) RequestCode(ctx context.Context, solutionTokens ...string) (string, error) {
	if len(solutionTokens) == 0 {
		return "", errors.New("berealsdk: at least one challenge solution token is required")
	}

	type challengeToken struct {
		Token      string `json:"token"`
		Identifier string `json:"identifier"`
	}
	tokens := make([]challengeToken, 0, len(solutionTokens))
	for _, t := range solutionTokens {
		tokens = append(tokens, challengeToken{Token: t, Identifier: "AR"})
	}

	body := map[string]any{
		"deviceId":    f.client.deviceID,
		"phoneNumber": f.phoneNumber,
		"tokens":      tokens,
	}

	var resp struct {
		VonageRequestID string `json:"vonageRequestId"`
		Status          string `json:"status"`
	}
	err := f.client.doJSON(ctx, http.MethodPost, f.client.vonageURL("/request-code"), nil, body, nil, &resp)
	if err != nil {
		return "", err
	}

	f.vonageRequestID = resp.VonageRequestID
	return resp.VonageRequestID, nil
}

// CheckCodeResult is the provider's answer to a successful code check: a
// short-lived verification token plus the provider-side user id.
type CheckCodeResult struct {
	Status string `json:"status"`
	Token  string `json:"token"`
	UID    string `json:"uid"`
}

// CheckCode exchanges the user-entered SMS code for a verification token.
// It requires a prior successful RequestCode on the same flow instance.
func (f *VerificationFlow) CheckCode(ctx context.Context, code string) (*CheckCodeResult, error) {
	if f.vonageRequestID == "" {
		return nil, errors.New("berealsdk: CheckCode requires a prior RequestCode")
	}

	body := map[string]string{
		"code":            code,
		"vonageRequestId": f.vonageRequestID,
	}

	var resp CheckCodeResult
	err := f.client.doJSON(ctx, http.MethodPost, f.client.vonageURL("/check-code"), nil, body, nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
