package signing

import (
	"bytes"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/digitorus/pdf"
)

// User-facing validation messages.
const (
	MsgChooseFile        = "Please choose a PDF file."
	MsgOnlyPDF           = "Only PDF files are allowed."
	MsgNotPDF            = "The uploaded file is not a PDF."
	MsgMissingEnvelopeID = "Provide the Envelope ID to download the completed document."
)

// allowedExtensions lists accepted upload extensions, lower case without the dot.
var allowedExtensions = map[string]struct{}{
	"pdf": {},
}

// ValidationError is an input problem that is reported back to the user
// instead of failing the request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// AllowedFile reports whether filename has an allowed extension.
func AllowedFile(filename string) bool {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return false
	}
	_, ok := allowedExtensions[strings.ToLower(filename[i+1:])]
	return ok
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename reduces a client-supplied name to a flat ASCII file name:
// directories are dropped, whitespace runs become underscores, other unsafe
// characters are removed and leading/trailing dots and underscores are
// trimmed. It returns "" when nothing usable remains.
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, `\`, "/")
	filename = path.Base(filename)
	filename = strings.Join(strings.Fields(filename), "_")
	filename = unsafeFilenameChars.ReplaceAllString(filename, "")
	return strings.Trim(filename, "._")
}

// pdfHeaderWindow is how far into the file the %PDF- marker may start.
const pdfHeaderWindow = 1024

// hasPDFHeader reports whether the %PDF- marker appears near the start of content.
func hasPDFHeader(content []byte) bool {
	if len(content) > pdfHeaderWindow {
		content = content[:pdfHeaderWindow]
	}
	return bytes.Contains(content, []byte("%PDF-"))
}

// checkPage validates a 1-based page number. pages is zero when the page
// count could not be read, in which case only the lower bound is checked.
func checkPage(page, pages int) *ValidationError {
	switch {
	case page < 1 && pages == 0:
		return invalid("Page %d does not exist in the uploaded document.", page)
	case page < 1 || (pages > 0 && page > pages):
		return invalid("Page %d does not exist in the uploaded document (it has %d).", page, pages)
	}
	return nil
}

// countPages parses content as a PDF and returns its page count.
func countPages(content []byte) (pages int, err error) {
	defer func() {
		// The PDF reader panics on some malformed object graphs.
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return 0, err
	}
	return reader.NumPage(), nil
}
