package credential

import (
	"strings"
	"sync/atomic"
)

// defaultTrustedPrefixes is the built-in trusted issuer list. An issuer is
// trusted when its id starts with any of these prefixes.
var defaultTrustedPrefixes = []string{
	"did:web:gov.",
	"did:web:id.gov",
	"did:ebsi:",
	"https://issuer.europa.eu",
}

// TrustStore holds the trusted issuer prefix list. Readers see an immutable
// snapshot; reloads swap the whole list atomically so concurrent validations
// never observe a partially updated table.
type TrustStore struct {
	prefixes atomic.Pointer[[]string]
}

// NewTrustStore builds a store with the given prefixes, or the built-in
// defaults when none are supplied.
func NewTrustStore(prefixes ...string) *TrustStore {
	s := &TrustStore{}
	if len(prefixes) == 0 {
		prefixes = defaultTrustedPrefixes
	}
	s.Swap(prefixes)
	return s
}

// Swap atomically replaces the trusted prefix list.
func (s *TrustStore) Swap(prefixes []string) {
	snapshot := append([]string(nil), prefixes...)
	s.prefixes.Store(&snapshot)
}

// Prefixes returns the current trusted prefix snapshot.
func (s *TrustStore) Prefixes() []string {
	return *s.prefixes.Load()
}

// Trusted reports whether the issuer id starts with a trusted prefix.
func (s *TrustStore) Trusted(issuerID string) bool {
	for _, prefix := range s.Prefixes() {
		if strings.HasPrefix(issuerID, prefix) {
			return true
		}
	}
	return false
}
