package verify

import (
	"context"
	"fmt"
	"os"

	"github.com/veridex/veridex/internal/model"
)

// Retriever tries providers in fixed fallback order. The first provider
// yielding at least one item short-circuits the rest. A provider failure is
// treated as "no evidence from that provider", never surfaced: retrieval
// always succeeds, possibly with an empty list.
type Retriever struct {
	providers []Provider
	verbose   bool
}

// NewRetriever creates a retriever over the given providers, tried in order
func NewRetriever(verbose bool, providers ...Provider) *Retriever {
	return &Retriever{providers: providers, verbose: verbose}
}

// Retrieve returns corroborating evidence for the query from the first
// provider that yields any, in provider return order.
func (r *Retriever) Retrieve(ctx context.Context, query string) []model.EvidenceItem {
	for _, provider := range r.providers {
		items, err := provider.Retrieve(ctx, query)
		if err != nil {
			if r.verbose {
				fmt.Fprintf(os.Stderr, "%s error: %v\n", provider.Name(), err)
			}
			continue
		}
		if len(items) > 0 {
			return items
		}
	}
	return nil
}
