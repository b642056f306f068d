package oauth

import (
	"crypto/rsa"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// DefaultAuthServer is the developer sandbox authorization host.
	DefaultAuthServer = "account-d.docusign.com"

	// ImpersonationScope lets the integration act as the user for eSignature calls.
	ImpersonationScope = "signature impersonation"

	// AssertionLifetime is the validity window of the signed assertion, not of
	// the access token it is exchanged for.
	AssertionLifetime = time.Hour
)

// AssertionParams identifies who the assertion is issued by and for.
type AssertionParams struct {
	// IntegrationKey is the client id of the integration (the issuer).
	IntegrationKey string

	// UserID is the GUID of the user being impersonated (the subject).
	UserID string

	// AuthServer is the authorization host, used as the audience.
	AuthServer string
}

// LoadPrivateKey reads a PEM-encoded RSA private key (PKCS#1 or PKCS#8).
func LoadPrivateKey(path string) (*rsa.PrivateKey, error) {
	keyPEM, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read private key: %w", err)
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM(keyPEM)
	if err != nil {
		return nil, fmt.Errorf("could not parse private key: %w", err)
	}
	return key, nil
}

// BuildAssertion returns an RS256 compact JWT valid for AssertionLifetime from now.
func BuildAssertion(params AssertionParams, key *rsa.PrivateKey, now time.Time) (string, error) {
	if params.IntegrationKey == "" || params.UserID == "" || params.AuthServer == "" {
		return "", fmt.Errorf("integration key, user id and auth server are required")
	}

	// Audience is a plain string; RegisteredClaims would encode it as an array.
	claims := jwt.MapClaims{
		"iss":   params.IntegrationKey,
		"sub":   params.UserID,
		"aud":   params.AuthServer,
		"iat":   now.Unix(),
		"exp":   now.Add(AssertionLifetime).Unix(),
		"scope": ImpersonationScope,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("could not sign assertion: %w", err)
	}
	return signed, nil
}
