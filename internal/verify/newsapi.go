package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/veridex/veridex/internal/model"
	"github.com/veridex/veridex/internal/rank"
	"github.com/veridex/veridex/internal/worker"
)

// newsAPIResponse is the subset of the /v2/everything body we consume
type newsAPIResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title       string `json:"title"`
		URL         string `json:"url"`
		Description string `json:"description"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// NewsAPIProvider queries the official news API, restricted to the trusted
// source allow-list. Without an API key the provider is a no-op.
type NewsAPIProvider struct {
	cfg     model.NewsAPIConfig
	sources *SourceList
	client  *http.Client
	limiter *worker.Limiter
}

// NewNewsAPIProvider creates the official API provider
func NewNewsAPIProvider(cfg model.NewsAPIConfig, limiter *worker.Limiter) *NewsAPIProvider {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &NewsAPIProvider{
		cfg:     cfg,
		sources: NewSourceList(cfg.Sources),
		client:  &http.Client{Timeout: timeout},
		limiter: limiter,
	}
}

// Name returns the provider name
func (p *NewsAPIProvider) Name() string {
	return string(model.ProviderNewsAPI)
}

// Retrieve queries the API and keeps titles whose TF-IDF cosine similarity to
// the full query clears the configured cutoff. Items come back in API return
// order.
func (p *NewsAPIProvider) Retrieve(ctx context.Context, query string) ([]model.EvidenceItem, error) {
	if p.cfg.APIKey == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", truncateQuery(query))
	params.Set("sources", p.sources.Param())
	params.Set("sortBy", "relevancy")
	params.Set("pageSize", strconv.Itoa(p.cfg.PageSize))
	params.Set("apiKey", p.cfg.APIKey)
	requestURL := p.cfg.Endpoint + "?" + params.Encode()

	if p.limiter != nil {
		if err := p.limiter.Wait(ctx, requestURL); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var parsed newsAPIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parse body: %w", err)
	}
	if len(parsed.Articles) == 0 {
		return nil, nil
	}

	titles := make([]string, len(parsed.Articles))
	for i, article := range parsed.Articles {
		titles[i] = article.Title
	}

	sims := rank.Similarities(query, titles)

	var items []model.EvidenceItem
	for i, sim := range sims {
		if sim <= p.cfg.SimilarityMin {
			continue
		}
		item := model.EvidenceItem{
			Title:      parsed.Articles[i].Title,
			Similarity: sim,
			Provider:   model.ProviderNewsAPI,
			URL:        parsed.Articles[i].URL,
			Snippet:    parsed.Articles[i].Description,
		}
		if ts, err := time.Parse(time.RFC3339, parsed.Articles[i].PublishedAt); err == nil {
			item.Published = &ts
		}
		items = append(items, item)
	}
	return items, nil
}
