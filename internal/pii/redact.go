package pii

import "sort"

// Redact scans content and replaces every match with its masked value.
// Counts are taken from the scan before any mutation, and replacement runs
// descending by offset so earlier offsets stay valid while the string length
// changes underneath later (already processed) matches.
func (d *Detector) Redact(content string) RedactResult {
	matches := d.collect(content)

	counts := map[string]int{}
	order := []string{}
	for _, m := range matches {
		if counts[m.Type] == 0 {
			order = append(order, m.Type)
		}
		counts[m.Type]++
	}

	// Highest offset first.
	sorted := make([]Match, len(matches))
	copy(sorted, matches)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Location.Start > sorted[j].Location.Start
	})

	redacted := content
	for _, m := range sorted {
		redacted = redacted[:m.Location.Start] + m.RedactedValue + redacted[m.Location.End:]
	}

	redactions := make([]Redaction, 0, len(order))
	for _, t := range order {
		redactions = append(redactions, Redaction{Type: t, Count: counts[t]})
	}

	return RedactResult{
		Redacted:      redacted,
		Redactions:    redactions,
		TotalRedacted: len(matches),
	}
}
