package interfaces

import (
	"context"
	"errors"
)

// Fixed values for the single-recipient embedded signing flow.
const (
	// DocumentID identifies the only document in every envelope.
	DocumentID = "1"
	// RecipientID identifies the only signer in every envelope.
	RecipientID = "1"
	// RoutingOrder of the only signer.
	RoutingOrder = "1"
	// ClientUserID marks the signer as embedded. The recipient view request
	// must carry the same value or the provider rejects it.
	ClientUserID = "1000"

	// EmailSubject of every envelope.
	EmailSubject = "Please sign this document"
	// EnvelopeStatusSent asks the provider to dispatch immediately instead of saving a draft.
	EnvelopeStatusSent = "sent"
	// AuthenticationNone requests a recipient view without an extra challenge.
	AuthenticationNone = "none"
	// CombinedDocumentID selects all documents plus the signing certificate as one PDF.
	CombinedDocumentID = "combined"
)

var (
	// ErrMissingAccessToken is returned by the client factory when no bearer token is configured.
	ErrMissingAccessToken = errors.New("ACCESS_TOKEN is missing, put it in your .env")

	// ErrMissingAccountID is returned by the client factory when no account is configured.
	ErrMissingAccountID = errors.New("ACCOUNT_ID is missing, put it in your .env")
)

// EnvelopeProvider is the subset of the e-signature API the application uses.
type EnvelopeProvider interface {
	// CreateEnvelope submits an envelope and returns the provider's summary.
	CreateEnvelope(ctx context.Context, envelope *EnvelopeDefinition) (*EnvelopeSummary, error)

	// CreateRecipientView returns a one-time embedded signing URL for a recipient.
	CreateRecipientView(ctx context.Context, envelopeID string, req *RecipientViewRequest) (*ViewURL, error)

	// GetCombinedDocument returns the merged PDF of a completed envelope.
	GetCombinedDocument(ctx context.Context, envelopeID string) ([]byte, error)
}
