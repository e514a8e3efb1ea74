package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"complyd/internal/pii"
	piihandler "complyd/internal/pii/handler"
)

var scanContext string

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Scan content for PII (stdin when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		detector, err := newDetector()
		if err != nil {
			return err
		}
		content, err := readInput(fileArg(args))
		if err != nil {
			return err
		}

		opts := pii.Options{ContentType: pii.ContentTypeText}
		switch scanContext {
		case "", "document", "message":
		case "code":
			opts.ContentType = pii.ContentTypeCode
		default:
			return fmt.Errorf("unknown context %q (want code, document, or message)", scanContext)
		}

		return printJSON(piihandler.FromScanResult(detector.Detect(content, opts)))
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanContext, "context", "", "content hint: code, document, or message")
	rootCmd.AddCommand(scanCmd)
}

func fileArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
