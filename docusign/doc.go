// Package docusign is a small client for the DocuSign eSignature REST API
// v2.1 covering envelope creation, embedded recipient views and combined
// document download.
//
// New fails fast with interfaces.ErrMissingAccessToken when no bearer token is
// configured. Every request carries "Authorization: Bearer <token>"; non-2xx
// responses are returned as *ProviderError.
//
// MockProvider is a testify mock of interfaces.EnvelopeProvider for tests in
// other packages.
package docusign
