package model

import "time"

// EvidenceItem represents one corroborating article title returned by a
// news-search provider, ranked against the claim by lexical similarity.
type EvidenceItem struct {
	Title      string       `json:"title"`                // Candidate article title
	Similarity float64      `json:"similarity"`           // TF-IDF cosine similarity to the claim
	Provider   ProviderName `json:"provider"`             // Which backend produced it
	URL        string       `json:"url,omitempty"`        // Article URL when the backend exposes one
	Snippet    string       `json:"snippet,omitempty"`    // Plain-text article snippet when available
	Published  *time.Time   `json:"published,omitempty"`  // Publication time when known
}

// ProviderName identifies the evidence backend
type ProviderName string

const (
	ProviderNewsAPI    ProviderName = "NewsAPI (Official)" // Official API, trusted-source allow-list
	ProviderGoogleNews ProviderName = "Google News"        // RSS aggregator fallback
)
