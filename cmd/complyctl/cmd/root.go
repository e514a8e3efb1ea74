// Package cmd implements the complyctl command tree. Every subcommand runs
// the analysis engines in-process and prints one JSON document to stdout, so
// the CLI works offline and in pipelines without a running server.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"complyd/internal/credential"
	"complyd/internal/pii"
	"complyd/internal/platform/config"
)

var trustConfigPath string

var rootCmd = &cobra.Command{
	Use:           "complyctl",
	Short:         "complyctl analyzes content for PII, compliance, and risk",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&trustConfigPath, "trust-config", "", "YAML file overriding trusted issuers and the PII allowlist")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "complyctl:", err)
		os.Exit(2)
	}
}

// loadPolicy resolves the optional trust config shared by all subcommands.
func loadPolicy() (config.TrustPolicy, error) {
	return config.LoadTrustPolicy(trustConfigPath)
}

func newDetector() (*pii.Detector, error) {
	policy, err := loadPolicy()
	if err != nil {
		return nil, err
	}
	return pii.NewDetector(pii.NewLibrary(policy.AllowlistExtra...)), nil
}

func newValidator() (*credential.Validator, error) {
	policy, err := loadPolicy()
	if err != nil {
		return nil, err
	}
	return credential.NewValidator(credential.NewTrustStore(policy.TrustedIssuerPrefixes...)), nil
}

// readInput returns the contents of the named file, or stdin for "-" or an
// empty name.
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(raw), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
