package docusign

import (
	"encoding/json"
	"fmt"
)

// ProviderError is a non-2xx response from the eSignature API. The provider
// does not distinguish a missing envelope from an unsigned one or a denied
// request in a way worth modelling here; callers surface it as-is.
type ProviderError struct {
	// StatusCode is the HTTP status returned by the provider.
	StatusCode int

	// ErrorCode and Message come from the provider's JSON error body, when present.
	ErrorCode string
	Message   string

	// Body is the raw response body.
	Body []byte
}

func newProviderError(statusCode int, body []byte) *ProviderError {
	perr := &ProviderError{StatusCode: statusCode, Body: body}

	var payload struct {
		ErrorCode string `json:"errorCode"`
		Message   string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		perr.ErrorCode = payload.ErrorCode
		perr.Message = payload.Message
	}
	return perr
}

// Error formats the provider's error code and message, falling back to the raw body.
func (e *ProviderError) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("provider returned %d %s: %s", e.StatusCode, e.ErrorCode, e.Message)
	}
	return fmt.Sprintf("provider returned %d: %s", e.StatusCode, string(e.Body))
}
