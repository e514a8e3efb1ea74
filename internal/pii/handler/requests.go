package handler

import (
	"strings"

	"github.com/asaskevich/govalidator"

	"complyd/internal/pii"
	dErrors "complyd/pkg/domain-errors"
)

// contextHints maps the public content-context hints onto detector
// content types. "document" and "message" are prose; only "code" changes
// the recommendation wording.
var contextHints = map[string]pii.ContentType{
	"code":     pii.ContentTypeCode,
	"document": pii.ContentTypeText,
	"message":  pii.ContentTypeText,
}

// ScanRequest is the HTTP request body for POST /pii/scan and
// POST /pii/redact.
type ScanRequest struct {
	Content string `json:"content"`
	Context string `json:"context,omitempty"`

	// Parsed values (populated by Validate)
	parsedContentType pii.ContentType
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *ScanRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	if r.Content == "" {
		return dErrors.New(dErrors.CodeValidation, "content is required")
	}

	r.Context = strings.TrimSpace(strings.ToLower(r.Context))
	if r.Context == "" {
		r.parsedContentType = pii.ContentTypeText
		return nil
	}
	if !govalidator.IsIn(r.Context, "code", "document", "message") {
		return dErrors.New(dErrors.CodeValidation, "context must be one of: code, document, message")
	}
	r.parsedContentType = contextHints[r.Context]

	return nil
}

// ParsedContentType returns the validated content-type hint.
func (r *ScanRequest) ParsedContentType() pii.ContentType {
	return r.parsedContentType
}
