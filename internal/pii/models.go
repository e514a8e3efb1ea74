package pii

// Severity ranks how damaging exposure of a matched value is.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// ContentType hints at what kind of text is being scanned. It only shapes
// the recommendation text, never the matching itself.
type ContentType string

const (
	ContentTypeText   ContentType = "text"
	ContentTypeCode   ContentType = "code"
	ContentTypeConfig ContentType = "config"
	ContentTypeLog    ContentType = "log"
)

// Location is the position of a match within the scanned content.
type Location struct {
	Start  int `json:"start"`
	End    int `json:"end"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Match is a single positioned PII detection.
type Match struct {
	Type          string   `json:"type"`
	Severity      Severity `json:"severity"`
	Value         string   `json:"value"`
	RedactedValue string   `json:"redacted_value"`
	Location      Location `json:"location"`
}

// Options tunes a scan.
type Options struct {
	ContentType ContentType
}

// Result is the outcome of a scan. An empty result is well-formed: HasPII is
// false, Matches is empty, and BySeverity contains no entries.
type Result struct {
	HasPII          bool
	Matches         []Match
	BySeverity      map[Severity][]Match
	Recommendations []string
}

// Redaction summarizes replacements for a single pattern type.
type Redaction struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// RedactResult is the outcome of redacting a content string. Counts reflect
// the matches found before any mutation of the content.
type RedactResult struct {
	Redacted      string      `json:"redacted_content"`
	Redactions    []Redaction `json:"redactions"`
	TotalRedacted int         `json:"total_redacted"`
}
