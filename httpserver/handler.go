package httpserver

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/ruteri/embedded-signing-demo/api"
	"github.com/ruteri/embedded-signing-demo/docusign"
	"github.com/ruteri/embedded-signing-demo/signing"
)

// MsgInvalidEnvelopeID is flashed when the download form carries something
// that is not an envelope id.
const MsgInvalidEnvelopeID = "The Envelope ID is not valid."

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Handler serves the upload form, the send and download actions and the
// completion page.
type Handler struct {
	signing        *signing.Service
	sessions       *SessionStore
	publicURL      string
	maxUploadBytes int64
	log            *slog.Logger
}

// NewHandler creates the request handler.
//
// Parameters:
//   - svc: signing service used for submission and retrieval
//   - sessions: signed cookie store for flash messages and the last envelope id
//   - publicURL: external base URL for the provider's return URL; derived from requests when empty
//   - maxUploadBytes: multipart size limit, api.DefaultMaxUploadBytes when zero
//   - log: structured logger
func NewHandler(svc *signing.Service, sessions *SessionStore, publicURL string, maxUploadBytes int64, log *slog.Logger) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = api.DefaultMaxUploadBytes
	}
	return &Handler{
		signing:        svc,
		sessions:       sessions,
		publicURL:      strings.TrimRight(publicURL, "/"),
		maxUploadBytes: maxUploadBytes,
		log:            log,
	}
}

// HandleIndex renders the upload form with any pending messages.
//
// URL format: GET /
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r)
	flashes := sess.PopFlashes()
	h.sessions.Save(w, sess)

	h.render(w, "index.html", map[string]any{
		"Flashes":   flashes,
		"Placement": signing.DefaultPlacement,
	})
}

// HandleSend sends the uploaded PDF for embedded signing and redirects the
// browser to the provider's signing ceremony.
//
// URL format: POST /send
// Form fields (multipart): recipient_name, recipient_email, x, y, page, file
//
// Input problems are flashed and redirect back to the form. Provider failures
// are not retried and end the request with an error page.
func (h *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.redirectWithFlash(w, r, sess, fmt.Sprintf("The file is larger than %d MB.", h.maxUploadBytes>>20))
			return
		}
		h.redirectWithFlash(w, r, sess, signing.MsgChooseFile)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(api.FieldFile)
	if err != nil {
		h.redirectWithFlash(w, r, sess, signing.MsgChooseFile)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.log.Error("Failed to read upload", "err", err)
		http.Error(w, "Failed to read upload", http.StatusBadRequest)
		return
	}

	req := &signing.SubmitRequest{
		Recipient: signing.Recipient{
			Name:  r.FormValue(api.FieldRecipientName),
			Email: r.FormValue(api.FieldRecipientEmail),
		},
		Placement: signing.Placement{
			Page: formInt(r, api.FieldPage, signing.DefaultPlacement.Page),
			X:    formInt(r, api.FieldX, signing.DefaultPlacement.X),
			Y:    formInt(r, api.FieldY, signing.DefaultPlacement.Y),
		},
		FileName:  header.Filename,
		Content:   content,
		ReturnURL: h.returnURL(r),
	}

	result, err := h.signing.Submit(r.Context(), req)

	var verr *signing.ValidationError
	if errors.As(err, &verr) {
		h.redirectWithFlash(w, r, sess, verr.Message)
		return
	}

	if result != nil && result.EnvelopeID != "" {
		sess.LastEnvelopeID = result.EnvelopeID
		sess.AddFlash("Envelope ID: " + result.EnvelopeID)
	}
	h.sessions.Save(w, sess)

	if err != nil {
		h.fail(w, "Failed to send envelope", err)
		return
	}

	http.Redirect(w, r, result.SigningURL, http.StatusFound)
}

// HandleDone renders the page the provider redirects to when the signing
// ceremony ends. The provider's status is not checked.
//
// URL format: GET /done?envelope_id=<id>[&event=<event>]
//
// The envelope id comes from the query string, falling back to the last
// envelope stored in the session. Query values that are not GUIDs are ignored.
func (h *Handler) HandleDone(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r)

	envelopeID := sess.LastEnvelopeID
	if parsed, err := uuid.Parse(r.URL.Query().Get(signing.ReturnEnvelopeParam)); err == nil {
		envelopeID = parsed.String()
		sess.LastEnvelopeID = envelopeID
	}
	flashes := sess.PopFlashes()
	h.sessions.Save(w, sess)

	h.render(w, "done.html", map[string]any{
		"EnvelopeID": envelopeID,
		"Event":      r.URL.Query().Get("event"),
		"Flashes":    flashes,
	})
}

// HandleDownload returns the combined signed PDF of an envelope as an attachment.
//
// URL format: POST /download
// Form fields: envelope_id
//
// Response: application/pdf attachment named signed_<envelope_id>.pdf,
// containing exactly the bytes returned by the provider.
func (h *Handler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r)

	envelopeID := strings.TrimSpace(r.FormValue(api.FieldEnvelopeID))
	if envelopeID == "" {
		h.redirectWithFlash(w, r, sess, signing.MsgMissingEnvelopeID)
		return
	}

	parsed, err := uuid.Parse(envelopeID)
	if err != nil {
		h.redirectWithFlash(w, r, sess, MsgInvalidEnvelopeID)
		return
	}

	doc, err := h.signing.Download(r.Context(), parsed.String())
	if err != nil {
		h.fail(w, "Failed to download signed document", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Content)))
	w.WriteHeader(http.StatusOK)
	w.Write(doc.Content)
}

func (h *Handler) redirectWithFlash(w http.ResponseWriter, r *http.Request, sess *Session, msg string) {
	sess.AddFlash(msg)
	h.sessions.Save(w, sess)
	http.Redirect(w, r, api.RouteIndex, http.StatusFound)
}

// fail reports a provider or internal error. Provider errors are shown as-is.
func (h *Handler) fail(w http.ResponseWriter, msg string, err error) {
	h.log.Error(msg, "err", err)

	var perr *docusign.ProviderError
	if errors.As(err, &perr) {
		http.Error(w, fmt.Sprintf("%s: %v", msg, err), http.StatusBadGateway)
		return
	}
	http.Error(w, msg, http.StatusInternalServerError)
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		h.log.Error("Failed to render template", "template", name, "err", err)
	}
}

// returnURL is where the provider sends the browser after signing.
func (h *Handler) returnURL(r *http.Request) string {
	if h.publicURL != "" {
		return h.publicURL + api.RouteDone
	}

	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host + api.RouteDone
}

// formInt parses an integer form field, returning def when it is missing or malformed.
func formInt(r *http.Request, field string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(r.FormValue(field)))
	if err != nil {
		return def
	}
	return v
}
