package docusign

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ruteri/embedded-signing-demo/interfaces"
)

// DefaultBasePath is the eSignature REST host of the developer sandbox.
const DefaultBasePath = "https://demo.docusign.net/restapi"

// Config holds the provider connection settings.
type Config struct {
	// BasePath is the REST API root, e.g. https://demo.docusign.net/restapi.
	BasePath string

	// AccessToken is sent as a bearer token on every request.
	AccessToken string

	// AccountID selects the account all envelope calls are made against.
	AccountID string

	// Timeout bounds each request. Zero means no client-side timeout.
	Timeout time.Duration

	// Transport overrides the underlying round tripper, mostly for tests.
	Transport http.RoundTripper
}

// Client calls the eSignature REST API v2.1. It implements
// interfaces.EnvelopeProvider.
type Client struct {
	baseURL    string
	accountID  string
	httpClient *http.Client
}

var _ interfaces.EnvelopeProvider = (*Client)(nil)

// New returns a client bound to cfg. It fails before building any request if
// the access token or account id is missing. Tokens are never refreshed; an
// expired token shows up as a ProviderError with status 401.
func New(cfg *Config) (*Client, error) {
	if strings.TrimSpace(cfg.AccessToken) == "" {
		return nil, interfaces.ErrMissingAccessToken
	}
	if strings.TrimSpace(cfg.AccountID) == "" {
		return nil, interfaces.ErrMissingAccountID
	}

	basePath := cfg.BasePath
	if basePath == "" {
		basePath = DefaultBasePath
	}

	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &Client{
		baseURL:   strings.TrimRight(basePath, "/"),
		accountID: cfg.AccountID,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: &bearerTransport{token: cfg.AccessToken, next: transport},
		},
	}, nil
}

// CreateEnvelope submits an envelope definition.
func (c *Client) CreateEnvelope(ctx context.Context, envelope *interfaces.EnvelopeDefinition) (*interfaces.EnvelopeSummary, error) {
	var summary interfaces.EnvelopeSummary
	if err := c.doJSON(ctx, http.MethodPost, c.accountPath("envelopes"), envelope, &summary); err != nil {
		return nil, fmt.Errorf("create envelope: %w", err)
	}
	return &summary, nil
}

// CreateRecipientView requests an embedded signing URL for a recipient of envelopeID.
func (c *Client) CreateRecipientView(ctx context.Context, envelopeID string, req *interfaces.RecipientViewRequest) (*interfaces.ViewURL, error) {
	var view interfaces.ViewURL
	path := c.accountPath("envelopes", envelopeID, "views", "recipient")
	if err := c.doJSON(ctx, http.MethodPost, path, req, &view); err != nil {
		return nil, fmt.Errorf("create recipient view: %w", err)
	}
	return &view, nil
}

// GetCombinedDocument downloads all documents of envelopeID merged with the
// signing certificate. The bytes are returned exactly as received.
func (c *Client) GetCombinedDocument(ctx context.Context, envelopeID string) ([]byte, error) {
	path := c.accountPath("envelopes", envelopeID, "documents", interfaces.CombinedDocumentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/pdf")

	body, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("get combined document: %w", err)
	}
	return body, nil
}

func (c *Client) accountPath(segments ...string) string {
	escaped := make([]string, 0, len(segments)+3)
	escaped = append(escaped, c.baseURL, "v2.1", "accounts", url.PathEscape(c.accountID))
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}
	return strings.Join(escaped, "/")
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	reqBody, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, path, bytes.NewReader(reqBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	respBody, err := c.do(req)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("could not parse provider response: %w", err)
	}
	return nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not reach provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newProviderError(resp.StatusCode, body)
	}
	return body, nil
}

// bearerTransport adds a fixed Authorization header to every request.
type bearerTransport struct {
	token string
	next  http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.token)
	return t.next.RoundTrip(req)
}
