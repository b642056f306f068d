package interfaces

// Document is an envelope document. Content travels base64-encoded.
type Document struct {
	DocumentBase64 string `json:"documentBase64"`
	Name           string `json:"name"`
	FileExtension  string `json:"fileExtension"`
	DocumentID     string `json:"documentId"`
}

// SignHere places a signature field on a page. Positions are pixels from the
// top-left corner of the page, encoded as decimal strings.
type SignHere struct {
	DocumentID string `json:"documentId"`
	PageNumber string `json:"pageNumber"`
	XPosition  string `json:"xPosition"`
	YPosition  string `json:"yPosition"`
}

// Tabs groups the fields assigned to a recipient.
type Tabs struct {
	SignHereTabs []SignHere `json:"signHereTabs,omitempty"`
}

// Signer is a recipient who signs the envelope.
type Signer struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	RecipientID  string `json:"recipientId"`
	RoutingOrder string `json:"routingOrder"`
	ClientUserID string `json:"clientUserId,omitempty"`
	Tabs         *Tabs  `json:"tabs,omitempty"`
}

// Recipients lists the envelope recipients.
type Recipients struct {
	Signers []Signer `json:"signers"`
}

// EnvelopeDefinition is the body of an envelope creation request.
type EnvelopeDefinition struct {
	EmailSubject string      `json:"emailSubject"`
	Documents    []Document  `json:"documents"`
	Recipients   *Recipients `json:"recipients"`
	Status       string      `json:"status"`
}

// EnvelopeSummary is returned when an envelope is created.
type EnvelopeSummary struct {
	EnvelopeID     string `json:"envelopeId"`
	Status         string `json:"status"`
	StatusDateTime string `json:"statusDateTime,omitempty"`
	URI            string `json:"uri,omitempty"`
}

// RecipientViewRequest asks for an embedded signing URL.
type RecipientViewRequest struct {
	AuthenticationMethod string `json:"authenticationMethod"`
	Email                string `json:"email"`
	UserName             string `json:"userName"`
	ClientUserID         string `json:"clientUserId"`
	ReturnURL            string `json:"returnUrl"`
}

// ViewURL carries the signing ceremony URL.
type ViewURL struct {
	URL string `json:"url"`
}
