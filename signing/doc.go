// Package signing implements the envelope submission and document retrieval
// flows on top of an interfaces.EnvelopeProvider.
//
// Submit checks the upload (present, .pdf extension, parseable, page in
// range), writes a scratch copy, builds a single-document single-signer
// envelope with one sign-here tab, sends it and requests the embedded signing
// URL. Download fetches the combined signed PDF and keeps a scratch copy.
package signing
