package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	pstrings "complyd/pkg/platform/strings"
)

// TrustPolicy overrides the engine's built-in reference data. It is loaded
// once at startup (or on an explicit reload) and applied as a whole; callers
// must swap complete tables atomically, never mutate them in place.
type TrustPolicy struct {
	// TrustedIssuerPrefixes replaces the credential validator's built-in
	// trusted issuer prefix list when non-empty.
	TrustedIssuerPrefixes []string `yaml:"trusted_issuer_prefixes"`

	// AllowlistExtra appends benign-context substrings to the PII
	// detector's allowlist.
	AllowlistExtra []string `yaml:"allowlist_extra"`
}

// LoadTrustPolicy reads a TrustPolicy from a YAML file. A missing path is not
// an error: it returns an empty policy so the built-in defaults apply.
func LoadTrustPolicy(path string) (TrustPolicy, error) {
	if path == "" {
		return TrustPolicy{}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return TrustPolicy{}, fmt.Errorf("read trust config: %w", err)
	}

	var policy TrustPolicy
	if err := yaml.Unmarshal(raw, &policy); err != nil {
		return TrustPolicy{}, fmt.Errorf("parse trust config: %w", err)
	}

	policy.TrustedIssuerPrefixes = pstrings.DedupeAndTrim(policy.TrustedIssuerPrefixes)
	policy.AllowlistExtra = pstrings.DedupeAndTrim(policy.AllowlistExtra)
	return policy, nil
}
