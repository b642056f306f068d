package signing

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/ruteri/embedded-signing-demo/interfaces"
)

// ReturnEnvelopeParam is the query parameter carrying the envelope id on the
// provider's redirect back to the application.
const ReturnEnvelopeParam = "envelope_id"

// Service sends uploaded documents for embedded signing and retrieves the
// signed result. It keeps no state between calls; the provider is
// authoritative for envelope status.
type Service struct {
	provider interfaces.EnvelopeProvider
	scratch  interfaces.ScratchStorage
	log      *slog.Logger
}

// NewService creates a signing service.
func NewService(provider interfaces.EnvelopeProvider, scratch interfaces.ScratchStorage, log *slog.Logger) *Service {
	return &Service{
		provider: provider,
		scratch:  scratch,
		log:      log,
	}
}

// SubmitRequest is a document upload together with its signer and placement.
type SubmitRequest struct {
	Recipient Recipient
	Placement Placement

	// FileName is the client-supplied name; it is sanitized before use.
	FileName string
	Content  []byte

	// ReturnURL is where the provider sends the browser once signing ends.
	// The envelope id is added as a query parameter.
	ReturnURL string
}

// SubmitResult identifies the created envelope and its signing ceremony.
type SubmitResult struct {
	EnvelopeID string
	SigningURL string
}

// Submit validates the upload, sends it as a new envelope and requests an
// embedded signing URL for the signer.
//
// Validation failures are returned as *ValidationError before any provider
// call. Creating an envelope cannot be undone: if the recipient view request
// fails afterwards, the result still carries the envelope id next to the error.
func (s *Service) Submit(ctx context.Context, req *SubmitRequest) (*SubmitResult, error) {
	if req.FileName == "" || len(req.Content) == 0 {
		return nil, invalid(MsgChooseFile)
	}
	if !AllowedFile(req.FileName) {
		return nil, invalid(MsgOnlyPDF)
	}

	if !hasPDFHeader(req.Content) {
		return nil, invalid(MsgNotPDF)
	}

	// The provider repairs many damaged files, so a parse failure only
	// disables the page range check.
	pages, err := countPages(req.Content)
	if err != nil {
		s.log.Debug("Could not count pages, sending as-is", "file", req.FileName, "err", err)
		pages = 0
	}
	if err := checkPage(req.Placement.Page, pages); err != nil {
		return nil, err
	}

	returnURL, err := url.Parse(req.ReturnURL)
	if err != nil {
		return nil, fmt.Errorf("invalid return url: %w", err)
	}

	fileName := SanitizeFilename(req.FileName)
	if fileName == "" || !AllowedFile(fileName) {
		fileName = "upload.pdf"
	}

	location, err := s.scratch.Put(ctx, interfaces.UploadsArea, fileName, req.Content)
	if err != nil {
		return nil, fmt.Errorf("could not store upload: %w", err)
	}
	s.log.Debug("Stored upload", "location", location, "pages", pages)

	envelope := BuildEnvelope(fileName, req.Content, req.Recipient, req.Placement)

	summary, err := s.provider.CreateEnvelope(ctx, envelope)
	if err != nil {
		return nil, err
	}
	result := &SubmitResult{EnvelopeID: summary.EnvelopeID}
	s.log.Info("Envelope created", "envelopeID", summary.EnvelopeID, "status", summary.Status)

	query := returnURL.Query()
	query.Set(ReturnEnvelopeParam, summary.EnvelopeID)
	returnURL.RawQuery = query.Encode()

	signer := envelope.Recipients.Signers[0]
	view, err := s.provider.CreateRecipientView(ctx, summary.EnvelopeID, BuildRecipientView(signer, returnURL.String()))
	if err != nil {
		s.log.Error("Recipient view failed for created envelope", "envelopeID", summary.EnvelopeID, "err", err)
		return result, err
	}

	result.SigningURL = view.URL
	return result, nil
}

// SignedDocument is a combined document ready for download.
type SignedDocument struct {
	EnvelopeID string
	FileName   string
	Content    []byte
}

// Download fetches the combined document of envelopeID, keeps a scratch copy
// and returns the provider's bytes unchanged. Completion is not checked
// beforehand; an unfinished or unknown envelope fails with the provider's error.
func (s *Service) Download(ctx context.Context, envelopeID string) (*SignedDocument, error) {
	if envelopeID == "" {
		return nil, invalid(MsgMissingEnvelopeID)
	}

	content, err := s.provider.GetCombinedDocument(ctx, envelopeID)
	if err != nil {
		return nil, err
	}

	fileName := SignedFileName(envelopeID)
	location, err := s.scratch.Put(ctx, interfaces.SignedArea, fileName, content)
	if err != nil {
		return nil, fmt.Errorf("could not store signed document: %w", err)
	}
	s.log.Info("Signed document retrieved", "envelopeID", envelopeID, "location", location, "size", len(content))

	return &SignedDocument{
		EnvelopeID: envelopeID,
		FileName:   fileName,
		Content:    content,
	}, nil
}
