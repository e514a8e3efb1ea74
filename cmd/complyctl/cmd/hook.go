package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"complyd/internal/pii"
	piihandler "complyd/internal/pii/handler"
)

// hookInput is the single JSON object the hook reads from stdin.
type hookInput struct {
	Event   string `json:"event"`
	Content string `json:"content"`
	Context string `json:"context,omitempty"`
}

// hookDecision is the single JSON object the hook writes to stdout. The
// exit code carries the same verdict for callers that only check status.
type hookDecision struct {
	Decision string                  `json:"decision"`
	Reason   string                  `json:"reason"`
	Event    string                  `json:"event,omitempty"`
	Scan     piihandler.ScanResponse `json:"scan"`
}

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "One-shot stdin/stdout PII gate for tool pipelines",
	Long: "hook reads one JSON object ({event, content, context?}) from stdin, " +
		"scans the content for PII, writes one JSON decision object to stdout, " +
		"and exits 0 to allow or 1 to block. Content containing critical PII " +
		"(credentials, keys) is blocked; everything else is allowed.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		detector, err := newDetector()
		if err != nil {
			return err
		}

		raw, err := readInput("")
		if err != nil {
			return err
		}
		var input hookInput
		if err := json.Unmarshal([]byte(raw), &input); err != nil {
			return fmt.Errorf("parse hook input: %w", err)
		}

		opts := pii.Options{ContentType: pii.ContentTypeText}
		if input.Context == "code" {
			opts.ContentType = pii.ContentTypeCode
		}
		result := detector.Detect(input.Content, opts)

		decision := hookDecision{
			Decision: "allow",
			Reason:   "no critical PII detected",
			Event:    input.Event,
			Scan:     piihandler.FromScanResult(result),
		}
		if critical := result.BySeverity[pii.SeverityCritical]; len(critical) > 0 {
			decision.Decision = "block"
			decision.Reason = fmt.Sprintf("%d critical PII match(es) detected", len(critical))
		}

		if err := printJSON(decision); err != nil {
			return err
		}
		if decision.Decision == "block" {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hookCmd)
}
