package credential

import "encoding/json"

// StringList accepts either a JSON string or an array of strings. JSON-LD
// producers emit both forms for @context and type.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = StringList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = StringList(many)
	return nil
}

// Contains reports whether the list includes the given value.
func (l StringList) Contains(value string) bool {
	for _, v := range l {
		if v == value {
			return true
		}
	}
	return false
}

// Credential is a W3C-Verifiable-Credential-shaped input record. Only the
// fields the structural checks inspect are modeled; unknown claim fields
// stay inside CredentialSubject.
type Credential struct {
	Context           StringList     `json:"@context"`
	Type              StringList     `json:"type"`
	Issuer            any            `json:"issuer"`
	IssuanceDate      string         `json:"issuanceDate"`
	ExpirationDate    string         `json:"expirationDate,omitempty"`
	CredentialSubject map[string]any `json:"credentialSubject"`
	Proof             map[string]any `json:"proof,omitempty"`
}

// IssuerID extracts the issuer identifier, which may be a bare string or an
// object with an "id" member.
func (c Credential) IssuerID() string {
	switch v := c.Issuer.(type) {
	case string:
		return v
	case map[string]any:
		if id, ok := v["id"].(string); ok {
			return id
		}
	}
	return ""
}

// Check is the outcome of one validation step.
type Check struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Details string `json:"details"`
}

// Options tunes which optional checks run.
type Options struct {
	// RequiredTypes must all appear in the credential's type array.
	RequiredTypes []string `json:"required_types,omitempty"`

	// SkipExpiry disables the expiry check; it runs by default.
	SkipExpiry bool `json:"skip_expiry,omitempty"`

	// CheckIssuerTrust matches the issuer against the trusted prefix list.
	CheckIssuerTrust bool `json:"check_issuer_trust,omitempty"`

	// VerifySignature requires a structurally complete proof object. The
	// cryptographic signature itself is NOT verified; see Validator.
	VerifySignature bool `json:"verify_signature,omitempty"`
}

// ValidationResult reports the full check sequence. Warnings never affect
// IsValid; only errors do.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Checks   []Check  `json:"checks"`
	Warnings []string `json:"warnings"`
	Errors   []string `json:"errors"`
}
