package verify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/net/html"

	"github.com/veridex/veridex/internal/model"
	"github.com/veridex/veridex/internal/rank"
	"github.com/veridex/veridex/internal/util"
	"github.com/veridex/veridex/internal/worker"
)

// GoogleNewsProvider queries the Google News RSS search feed. It is the
// fallback backend, used only when the official API yields nothing. Queries
// containing Arabic script are routed to the ar/SA edition with a relaxed
// similarity cutoff.
type GoogleNewsProvider struct {
	cfg     model.GoogleNewsConfig
	parser  *gofeed.Parser
	client  *http.Client
	robots  *util.RobotsChecker
	limiter *worker.Limiter
}

// NewGoogleNewsProvider creates the aggregator provider
func NewGoogleNewsProvider(cfg model.GoogleNewsConfig, limiter *worker.Limiter) *GoogleNewsProvider {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &GoogleNewsProvider{
		cfg:     cfg,
		parser:  gofeed.NewParser(),
		client:  &http.Client{Timeout: timeout},
		robots:  util.NewRobotsChecker(cfg.UserAgent, timeout),
		limiter: limiter,
	}
}

// Name returns the provider name
func (p *GoogleNewsProvider) Name() string {
	return string(model.ProviderGoogleNews)
}

// Retrieve fetches the search feed for the query, bounded to the configured
// recency window, and keeps titles above the similarity cutoff in feed order.
func (p *GoogleNewsProvider) Retrieve(ctx context.Context, query string) ([]model.EvidenceItem, error) {
	truncated := truncateQuery(query)
	arabic := containsArabic(truncated)

	feedURL := p.feedURL(truncated, arabic)

	if !p.robots.IsAllowed(ctx, feedURL) {
		return nil, fmt.Errorf("feed fetch disallowed by robots.txt")
	}
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx, feedURL); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", p.cfg.UserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	feed, err := p.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	items := feed.Items
	if len(items) > p.cfg.MaxResults {
		items = items[:p.cfg.MaxResults]
	}
	if len(items) == 0 {
		return nil, nil
	}

	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
	}

	threshold := p.cfg.SimilarityMin
	if arabic {
		threshold = p.cfg.ArabicSimilarityMin
	}

	sims := rank.Similarities(query, titles)

	var evidence []model.EvidenceItem
	for i, sim := range sims {
		if sim <= threshold {
			continue
		}
		evidence = append(evidence, model.EvidenceItem{
			Title:      items[i].Title,
			Similarity: sim,
			Provider:   model.ProviderGoogleNews,
			URL:        items[i].Link,
			Snippet:    plainText(items[i].Description),
			Published:  items[i].PublishedParsed,
		})
	}
	return evidence, nil
}

// feedURL builds the RSS search URL for the query, edition, and recency window
func (p *GoogleNewsProvider) feedURL(query string, arabic bool) string {
	lang, country := "en", "US"
	if arabic {
		lang, country = "ar", "SA"
	}

	q := query
	if p.cfg.Period != "" {
		q += " when:" + p.cfg.Period
	}

	params := url.Values{}
	params.Set("q", q)
	params.Set("hl", lang)
	params.Set("gl", country)
	params.Set("ceid", country+":"+lang)
	return p.cfg.BaseURL + "/rss/search?" + params.Encode()
}

// plainText strips markup from an HTML fragment, returning its visible text
func plainText(fragment string) string {
	if fragment == "" {
		return ""
	}
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.TrimSpace(sb.String())
}
