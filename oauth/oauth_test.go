package oauth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	path := filepath.Join(t.TempDir(), "private.key")
	require.NoError(t, os.WriteFile(path, keyPEM, 0600))
	return key, path
}

func TestBuildAssertion(t *testing.T) {
	key, path := writeTestKey(t)

	loaded, err := LoadPrivateKey(path)
	require.NoError(t, err)
	assert.True(t, key.Equal(loaded))

	now := time.Now().Truncate(time.Second)
	params := AssertionParams{
		IntegrationKey: "33cafb67-e100-4cdd-92bb-694c38487083",
		UserID:         "a28302dc-e1cf-4cac-a4d8-083c1003e28e",
		AuthServer:     DefaultAuthServer,
	}

	signed, err := BuildAssertion(params, loaded, now)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(t *jwt.Token) (interface{}, error) {
		return &key.PublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}), jwt.WithAudience(DefaultAuthServer))
	require.NoError(t, err)
	assert.True(t, token.Valid)

	assert.Equal(t, params.IntegrationKey, claims["iss"])
	assert.Equal(t, params.UserID, claims["sub"])
	assert.Equal(t, DefaultAuthServer, claims["aud"])
	assert.Equal(t, "signature impersonation", claims["scope"])
	assert.Equal(t, float64(now.Unix()), claims["iat"])
	assert.Equal(t, float64(now.Unix()+3600), claims["exp"])
}

func TestBuildAssertion_MissingParams(t *testing.T) {
	key, _ := writeTestKey(t)
	_, err := BuildAssertion(AssertionParams{IntegrationKey: "x", AuthServer: DefaultAuthServer}, key, time.Now())
	assert.Error(t, err)
}

func TestLoadPrivateKey_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "private.key")
	require.NoError(t, os.WriteFile(path, []byte("not a key"), 0600))

	_, err := LoadPrivateKey(path)
	assert.Error(t, err)

	_, err = LoadPrivateKey(filepath.Join(t.TempDir(), "missing.key"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTokenEndpoint(t *testing.T) {
	assert.Equal(t, "https://account-d.docusign.com/oauth/token", TokenEndpoint("account-d.docusign.com"))
	assert.Equal(t, "http://127.0.0.1:8080/oauth/token", TokenEndpoint("http://127.0.0.1:8080/"))
}

func TestExchangeAssertion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/oauth/token", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, JWTBearerGrant, r.PostForm.Get("grant_type"))

		if r.PostForm.Get("assertion") != "good.assertion.jwt" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"consent_required"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"eyJ0eXAi.access","token_type":"Bearer","expires_in":28800}`))
	}))
	defer srv.Close()

	token, err := ExchangeAssertion(context.Background(), srv.Client(), TokenEndpoint(srv.URL), "good.assertion.jwt")
	require.NoError(t, err)
	assert.Equal(t, "eyJ0eXAi.access", token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, int64(28800), token.ExpiresIn)

	_, err = ExchangeAssertion(context.Background(), srv.Client(), TokenEndpoint(srv.URL), "bad")
	var terr *TokenError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusBadRequest, terr.StatusCode)
	assert.Equal(t, `{"error":"consent_required"}`, terr.Body)
}
