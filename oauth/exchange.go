package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// JWTBearerGrant is the OAuth grant type for exchanging a signed assertion.
const JWTBearerGrant = "urn:ietf:params:oauth:grant-type:jwt-bearer"

// TokenResponse is the authorization server's reply to a successful exchange.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// TokenError is any non-200 reply. Body is kept verbatim for the operator.
type TokenError struct {
	StatusCode int
	Body       string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("token endpoint returned %d: %s", e.StatusCode, e.Body)
}

// TokenEndpoint returns the token URL of authServer. A bare host is served
// over https; a value that already has a scheme is used as the base as-is.
func TokenEndpoint(authServer string) string {
	base := strings.TrimRight(authServer, "/")
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}
	return base + "/oauth/token"
}

// ExchangeAssertion trades a signed assertion for an access token. There is no
// retry.
func ExchangeAssertion(ctx context.Context, client *http.Client, tokenURL, assertion string) (*TokenResponse, error) {
	form := url.Values{
		"grant_type": {JWTBearerGrant},
		"assertion":  {assertion},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not reach token endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &TokenError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var token TokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("could not parse token response: %w", err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("token response has no access_token: %s", string(body))
	}
	return &token, nil
}
