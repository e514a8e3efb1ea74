package regulation

// Severity ranks how serious non-compliance with a requirement is.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Requirement is a single obligation within a framework.
type Requirement struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Requirement string   `json:"requirement"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Controls    []string `json:"controls"`
}

// Framework is a regulatory framework with its requirements. Frameworks are
// loaded once at process start and treated as read-only reference data.
type Framework struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	FullName     string        `json:"full_name"`
	Jurisdiction string        `json:"jurisdiction"`
	Requirements []Requirement `json:"requirements"`
}
