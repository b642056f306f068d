package api

// Form field names of the HTML forms.
const (
	FieldRecipientName  = "recipient_name"
	FieldRecipientEmail = "recipient_email"
	FieldX              = "x"
	FieldY              = "y"
	FieldPage           = "page"
	FieldFile           = "file"
	FieldEnvelopeID     = "envelope_id"
)

// Routes served by the application.
const (
	RouteIndex    = "/"
	RouteSend     = "/send"
	RouteDone     = "/done"
	RouteDownload = "/download"
)

// DefaultMaxUploadBytes bounds multipart uploads when no limit is configured.
const DefaultMaxUploadBytes = 25 << 20
