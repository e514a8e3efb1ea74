package cmd

import (
	"github.com/spf13/cobra"
)

var redactCmd = &cobra.Command{
	Use:   "redact [file]",
	Short: "Redact PII from content (stdin when no file is given)",
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
		return printJSON(detector.Redact(content))
	},
}

func init() {
	rootCmd.AddCommand(redactCmd)
}
