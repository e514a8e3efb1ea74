package pii

import (
	"sort"
	"strings"

	pstrings "complyd/pkg/platform/strings"
)

// allowlistWindow is how many characters around a match are inspected for
// benign-context markers.
const allowlistWindow = 20

// Detector applies the pattern library to content strings. It holds no
// mutable state, so a single Detector is safe for concurrent use.
type Detector struct {
	lib *Library
}

// NewDetector creates a detector over the given library.
func NewDetector(lib *Library) *Detector {
	return &Detector{lib: lib}
}

// Detect scans content against every pattern in the library. It never fails:
// unmatched or empty content produces an empty, well-formed Result.
func (d *Detector) Detect(content string, opts Options) Result {
	matches := d.collect(content)

	result := Result{
		HasPII:     len(matches) > 0,
		Matches:    matches,
		BySeverity: map[Severity][]Match{},
	}
	for _, m := range matches {
		result.BySeverity[m.Severity] = append(result.BySeverity[m.Severity], m)
	}
	result.Recommendations = d.recommendations(matches, opts.ContentType)
	return result
}

// collect runs every pattern, drops allowlisted hits, resolves overlaps, and
// returns the surviving matches sorted ascending by start offset.
func (d *Detector) collect(content string) []Match {
	var matches []Match
	for _, p := range d.lib.patterns {
		for _, loc := range p.Regex.FindAllStringIndex(content, -1) {
			value := content[loc[0]:loc[1]]
			if d.allowlisted(content, loc[0], loc[1]) {
				continue
			}
			line, column := position(content, loc[0])
			matches = append(matches, Match{
				Type:          p.Type,
				Severity:      p.Severity,
				Value:         value,
				RedactedValue: redactValue(value, p.RedactChar),
				Location: Location{
					Start:  loc[0],
					End:    loc[1],
					Line:   line,
					Column: column,
				},
			})
		}
	}

	// Stable order: ascending start, longest match first on ties. Overlaps
	// are then resolved by keeping the earliest (and on ties, longest)
	// match so redaction never operates on intersecting ranges.
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Location.Start != matches[j].Location.Start {
			return matches[i].Location.Start < matches[j].Location.Start
		}
		return matches[i].Location.End > matches[j].Location.End
	})

	kept := matches[:0]
	prevEnd := -1
	for _, m := range matches {
		if m.Location.Start < prevEnd {
			continue
		}
		kept = append(kept, m)
		prevEnd = m.Location.End
	}
	return kept
}

// allowlisted reports whether the match or its surrounding window contains a
// known benign marker.
func (d *Detector) allowlisted(content string, start, end int) bool {
	from := start - allowlistWindow
	if from < 0 {
		from = 0
	}
	to := end + allowlistWindow
	if to > len(content) {
		to = len(content)
	}
	window := strings.ToLower(content[from:to])
	for _, benign := range d.lib.allowlist {
		if strings.Contains(window, strings.ToLower(benign)) {
			return true
		}
	}
	return false
}

// redactValue masks the interior of a value, keeping up to two leading and
// trailing characters for recognizability. Short values are fully masked.
func redactValue(value string, redactChar rune) string {
	runes := []rune(value)
	if len(runes) <= 4 {
		return strings.Repeat(string(redactChar), len(runes))
	}
	masked := make([]rune, len(runes))
	copy(masked, runes)
	for i := 2; i < len(runes)-2; i++ {
		masked[i] = redactChar
	}
	return string(masked)
}

// position converts a byte offset into 1-based line and column numbers.
func position(content string, offset int) (line, column int) {
	line = 1
	column = 1
	for _, r := range content[:offset] {
		if r == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}

func (d *Detector) recommendations(matches []Match, contentType ContentType) []string {
	var recs []string

	types := map[string]bool{}
	severities := map[Severity]bool{}
	for _, m := range matches {
		types[m.Type] = true
		severities[m.Severity] = true
	}

	if severities[SeverityCritical] {
		recs = append(recs, "Remove or encrypt credential material before this content is stored or shared")
	}
	if types["ssn"] || types["credit_card"] || types["iban"] {
		recs = append(recs, "Government and financial identifiers must only be held in approved systems of record")
	}
	if types["email"] || types["phone"] || types["date_of_birth"] {
		recs = append(recs, "Minimize collection of personal contact details (GDPR data minimization)")
	}
	if len(matches) > 0 {
		recs = append(recs, "Review flagged values and apply masking before exporting this content")
	}
	if contentType == ContentTypeCode || contentType == ContentTypeConfig {
		recs = append(recs, "Never hardcode secrets; load them from the environment or a secret manager")
	}

	return pstrings.DedupeAndTrim(recs)
}
