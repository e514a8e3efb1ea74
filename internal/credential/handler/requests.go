package handler

import (
	"complyd/internal/credential"
	dErrors "complyd/pkg/domain-errors"
)

// VerifyRequest is the HTTP request body for POST /credentials/verify.
// Structural problems inside the credential itself are the validator's
// job and come back as failed checks, not as HTTP errors.
type VerifyRequest struct {
	Credential *credential.Credential `json:"credential"`
	Options    credential.Options     `json:"options"`
}

// Validate validates the request envelope.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *VerifyRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.Credential == nil {
		return dErrors.New(dErrors.CodeValidation, "credential is required")
	}
	return nil
}
