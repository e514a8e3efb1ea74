package pii

import "regexp"

// Pattern is a named PII detector. Patterns are compiled once at startup and
// shared read-only across concurrent scans.
type Pattern struct {
	Type        string
	Regex       *regexp.Regexp
	Description string
	Severity    Severity
	RedactChar  rune
}

// Library bundles the pattern table with the allowlist of benign contexts.
// A Library is immutable after construction; reloading reference data means
// building a fresh Library and swapping it wholesale.
type Library struct {
	patterns  []Pattern
	allowlist []string
}

// defaultPatterns is the built-in detector table. Regexes stay deliberately
// coarse: the contract is "flag for human review", not authoritative
// determination, and the allowlist suppresses the common benign hits.
var defaultPatterns = []Pattern{
	{
		Type:        "email",
		Regex:       regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`),
		Description: "Email address",
		Severity:    SeverityMedium,
		RedactChar:  '*',
	},
	{
		Type:        "ssn",
		Regex:       regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
		Description: "US Social Security Number",
		Severity:    SeverityHigh,
		RedactChar:  '#',
	},
	{
		Type:        "phone",
		Regex:       regexp.MustCompile(`\(?\d{3}\)?[-. ]\d{3}[-. ]\d{4}\b`),
		Description: "Phone number",
		Severity:    SeverityLow,
		RedactChar:  '*',
	},
	{
		Type:        "credit_card",
		Regex:       regexp.MustCompile(`\b\d{4}[- ]?\d{4}[- ]?\d{4}[- ]?\d{1,4}\b`),
		Description: "Payment card number",
		Severity:    SeverityHigh,
		RedactChar:  '#',
	},
	{
		Type:        "iban",
		Regex:       regexp.MustCompile(`\b[A-Z]{2}\d{2}[A-Z0-9]{11,30}\b`),
		Description: "IBAN account number",
		Severity:    SeverityHigh,
		RedactChar:  '#',
	},
	{
		Type:        "ip_address",
		Regex:       regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`),
		Description: "IP address",
		Severity:    SeverityLow,
		RedactChar:  '*',
	},
	{
		Type:        "api_key",
		Regex:       regexp.MustCompile(`(?i)\b(?:api[_-]?key|access[_-]?key|secret[_-]?key|token)\s*[=:]\s*["']?[A-Za-z0-9_\-./+=]{16,}["']?`),
		Description: "API key or access token",
		Severity:    SeverityCritical,
		RedactChar:  '*',
	},
	{
		Type:        "password",
		Regex:       regexp.MustCompile(`(?i)\b(?:password|passwd|pwd)\s*[=:]\s*["']?[^\s"']{6,}["']?`),
		Description: "Password assignment",
		Severity:    SeverityCritical,
		RedactChar:  '*',
	},
	{
		Type:        "aws_access_key",
		Regex:       regexp.MustCompile(`\b(?:AKIA|ASIA)[0-9A-Z]{16}\b`),
		Description: "AWS access key ID",
		Severity:    SeverityCritical,
		RedactChar:  '*',
	},
	{
		Type:        "private_key",
		Regex:       regexp.MustCompile(`-----BEGIN (?:RSA |EC |OPENSSH |PGP )?PRIVATE KEY(?: BLOCK)?-----`),
		Description: "Private key material",
		Severity:    SeverityCritical,
		RedactChar:  '*',
	},
	{
		Type:        "date_of_birth",
		Regex:       regexp.MustCompile(`(?i)\b(?:dob|date of birth|born)[:\s]+\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4}\b`),
		Description: "Date of birth",
		Severity:    SeverityMedium,
		RedactChar:  '*',
	},
}

// defaultAllowlist lists substrings that mark a match as benign when they
// appear inside the match or its surrounding context window.
var defaultAllowlist = []string{
	"example.com",
	"example.org",
	"example.net",
	"placeholder",
	"your-api-key",
	"your_api_key",
	"changeme",
	"lorem",
	"000-00-0000",
	"127.0.0.1",
	"0.0.0.0",
}

// NewLibrary builds the pattern library, appending any extra allowlist
// entries from deployment configuration.
func NewLibrary(allowlistExtra ...string) *Library {
	allow := make([]string, 0, len(defaultAllowlist)+len(allowlistExtra))
	allow = append(allow, defaultAllowlist...)
	allow = append(allow, allowlistExtra...)
	return &Library{
		patterns:  defaultPatterns,
		allowlist: allow,
	}
}

// Patterns returns the detector table. Callers must treat it as read-only.
func (l *Library) Patterns() []Pattern {
	return l.patterns
}
