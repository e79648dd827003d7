// Package verify gathers corroboration evidence for a claim from external
// news-search providers and ranks it by lexical similarity.
package verify

import (
	"context"

	"github.com/veridex/veridex/internal/model"
)

// queryMaxChars bounds the query sent to any provider
const queryMaxChars = 100

// Provider retrieves candidate evidence for a query. Implementations return
// items in backend order; the caller treats an error like an empty result.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Retrieve returns corroborating items above the provider's similarity
	// cutoff, in backend return order.
	Retrieve(ctx context.Context, query string) ([]model.EvidenceItem, error)
}

// truncateQuery caps the query at queryMaxChars characters
func truncateQuery(query string) string {
	runes := []rune(query)
	if len(runes) <= queryMaxChars {
		return query
	}
	return string(runes[:queryMaxChars])
}

// containsArabic reports whether the text contains script in the Arabic
// Unicode block (U+0600..U+06FF).
func containsArabic(text string) bool {
	for _, r := range text {
		if r >= 0x0600 && r <= 0x06FF {
			return true
		}
	}
	return false
}
