package signing

import (
	"encoding/base64"
	"strconv"

	"github.com/ruteri/embedded-signing-demo/interfaces"
)

// Placement is where the signature field goes, in pixels from the top-left
// corner of a 1-based page.
type Placement struct {
	Page int
	X    int
	Y    int
}

// DefaultPlacement is used for form fields that are missing or not integers.
var DefaultPlacement = Placement{Page: 1, X: 100, Y: 150}

// Recipient is the single signer of an envelope.
type Recipient struct {
	Name  string
	Email string
}

// BuildEnvelope packages one PDF for one embedded signer with one sign-here
// tab, ready to be sent immediately.
func BuildEnvelope(fileName string, content []byte, recipient Recipient, placement Placement) *interfaces.EnvelopeDefinition {
	document := interfaces.Document{
		DocumentBase64: base64.StdEncoding.EncodeToString(content),
		Name:           fileName,
		FileExtension:  "pdf",
		DocumentID:     interfaces.DocumentID,
	}

	signHere := interfaces.SignHere{
		DocumentID: interfaces.DocumentID,
		PageNumber: strconv.Itoa(placement.Page),
		XPosition:  strconv.Itoa(placement.X),
		YPosition:  strconv.Itoa(placement.Y),
	}

	signer := interfaces.Signer{
		Email:        recipient.Email,
		Name:         recipient.Name,
		RecipientID:  interfaces.RecipientID,
		RoutingOrder: interfaces.RoutingOrder,
		ClientUserID: interfaces.ClientUserID,
		Tabs:         &interfaces.Tabs{SignHereTabs: []interfaces.SignHere{signHere}},
	}

	return &interfaces.EnvelopeDefinition{
		EmailSubject: interfaces.EmailSubject,
		Documents:    []interfaces.Document{document},
		Recipients:   &interfaces.Recipients{Signers: []interfaces.Signer{signer}},
		Status:       interfaces.EnvelopeStatusSent,
	}
}

// BuildRecipientView asks for the embedded signing URL of signer. The client
// user id is copied from the signer so the two can never disagree.
func BuildRecipientView(signer interfaces.Signer, returnURL string) *interfaces.RecipientViewRequest {
	return &interfaces.RecipientViewRequest{
		AuthenticationMethod: interfaces.AuthenticationNone,
		Email:                signer.Email,
		UserName:             signer.Name,
		ClientUserID:         signer.ClientUserID,
		ReturnURL:            returnURL,
	}
}

// SignedFileName is the download and scratch name of a combined document.
func SignedFileName(envelopeID string) string {
	return "signed_" + envelopeID + ".pdf"
}
