// Package interfaces defines the types and interfaces shared by the signing
// service, the provider client and the scratch storage backends.
//
// # Provider
//
// EnvelopeProvider covers the three e-signature calls the application makes:
// creating an envelope, requesting an embedded recipient view and fetching the
// combined signed document. The docusign package implements it over REST.
//
// # Envelope model
//
// EnvelopeDefinition, Document, Signer, SignHere and RecipientViewRequest
// mirror the provider's JSON bodies. Every envelope has exactly one document,
// one signer and one sign-here tab; the fixed identifiers live in provider.go.
//
// # Storage
//
// ScratchStorage keeps transient copies of uploads and signed documents in
// named areas. Backends are addressed with file:// or s3:// URIs.
package interfaces
