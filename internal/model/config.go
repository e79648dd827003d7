package model

import "time"

// Config holds the complete runtime configuration
type Config struct {
	Encoder     EncoderConfig     `yaml:"encoder" mapstructure:"encoder"`
	NewsAPI     NewsAPIConfig     `yaml:"newsapi" mapstructure:"newsapi"`
	GoogleNews  GoogleNewsConfig  `yaml:"googlenews" mapstructure:"googlenews"`
	Fusion      FusionConfig      `yaml:"fusion" mapstructure:"fusion"`
	Server      ServerConfig      `yaml:"server" mapstructure:"server"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// EncoderConfig configures the embedding backend
type EncoderConfig struct {
	// Backend name: "hashing" (local, deterministic) or "openai"
	Backend string `yaml:"backend" mapstructure:"backend"`

	// Model is the remote embedding model (openai backend only)
	Model string `yaml:"model" mapstructure:"model"`

	// APIKey for the openai backend
	APIKey string `yaml:"api_key,omitempty" mapstructure:"api_key"`

	// Dimension of the hashing backend's vectors
	Dimension int `yaml:"dimension" mapstructure:"dimension"`

	// Timeout per embedding request
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// NewsAPIConfig configures the official API provider
type NewsAPIConfig struct {
	APIKey   string        `yaml:"api_key,omitempty" mapstructure:"api_key"`
	Endpoint string        `yaml:"endpoint" mapstructure:"endpoint"`
	PageSize int           `yaml:"page_size" mapstructure:"page_size"`
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// SimilarityMin is the TF-IDF cosine cutoff for keeping a title
	SimilarityMin float64 `yaml:"similarity_min" mapstructure:"similarity_min"`

	// Sources is the trusted-source allow-list the query is restricted to
	Sources []string `yaml:"sources" mapstructure:"sources"`
}

// GoogleNewsConfig configures the RSS aggregator fallback provider
type GoogleNewsConfig struct {
	BaseURL    string        `yaml:"base_url" mapstructure:"base_url"`
	Period     string        `yaml:"period" mapstructure:"period"`
	MaxResults int           `yaml:"max_results" mapstructure:"max_results"`
	Timeout    time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent  string        `yaml:"user_agent" mapstructure:"user_agent"`

	SimilarityMin float64 `yaml:"similarity_min" mapstructure:"similarity_min"`

	// ArabicSimilarityMin is the relaxed cutoff for Arabic-script queries
	ArabicSimilarityMin float64 `yaml:"arabic_similarity_min" mapstructure:"arabic_similarity_min"`
}

// FusionConfig holds the hand-tuned fusion constants. The values are fixed by
// behavioral parity with the original tuning; they live here so they can be
// tested and tuned independently.
type FusionConfig struct {
	// EvidenceOffset is subtracted from p_fake when any evidence was found
	EvidenceOffset float64 `yaml:"evidence_offset" mapstructure:"evidence_offset"`

	// FakeThreshold: final p_fake strictly above it labels the claim "fake"
	FakeThreshold float64 `yaml:"fake_threshold" mapstructure:"fake_threshold"`

	// RealThreshold: final p_fake strictly below it labels the claim "real"
	RealThreshold float64 `yaml:"real_threshold" mapstructure:"real_threshold"`

	// UncorroboratedDefault replaces weak fake-probabilities when no evidence exists
	UncorroboratedDefault float64 `yaml:"uncorroborated_default" mapstructure:"uncorroborated_default"`

	// EvidenceSourceScore / NoEvidenceSourceScore are the two trust-signal values
	EvidenceSourceScore   float64 `yaml:"evidence_source_score" mapstructure:"evidence_source_score"`
	NoEvidenceSourceScore float64 `yaml:"no_evidence_source_score" mapstructure:"no_evidence_source_score"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Port         int           `yaml:"port" mapstructure:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
}

// ConcurrencyConfig bounds concurrent work
type ConcurrencyConfig struct {
	// BatchWorkers is the pool size for batch analysis
	BatchWorkers int `yaml:"batch_workers" mapstructure:"batch_workers"`

	// ProviderRate / ProviderBurst bound outbound provider calls per host
	ProviderRate  float64 `yaml:"provider_rate" mapstructure:"provider_rate"`
	ProviderBurst int     `yaml:"provider_burst" mapstructure:"provider_burst"`
}

// OutputConfig controls diagnostic output
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// TrustedSources is the curated set of outlet identifiers the official API
// is restricted to querying against.
var TrustedSources = []string{
	"bbc-news", "reuters", "associated-press", "cnn", "al-jazeera-english",
	"the-washington-post", "google-news", "the-verge", "techcrunch", "wired",
	"bloomberg", "business-insider", "espn", "bbc-sport", "usa-today", "time",
	"independent", "nbc-news", "fox-news",
}

// DefaultConfig returns the standard configuration
func DefaultConfig() *Config {
	return &Config{
		Encoder: EncoderConfig{
			Backend:   "hashing",
			Model:     "text-embedding-3-small",
			Dimension: 256,
			Timeout:   30 * time.Second,
		},
		NewsAPI: NewsAPIConfig{
			Endpoint:      "https://newsapi.org/v2/everything",
			PageSize:      5,
			Timeout:       5 * time.Second,
			SimilarityMin: 0.10,
			Sources:       TrustedSources,
		},
		GoogleNews: GoogleNewsConfig{
			BaseURL:             "https://news.google.com",
			Period:              "7d",
			MaxResults:          5,
			Timeout:             5 * time.Second,
			UserAgent:           "Veridex/0.1 (+https://github.com/veridex/veridex)",
			SimilarityMin:       0.10,
			ArabicSimilarityMin: 0.05,
		},
		Fusion: FusionConfig{
			EvidenceOffset:        0.8,
			FakeThreshold:         0.60,
			RealThreshold:         0.30,
			UncorroboratedDefault: 0.50,
			EvidenceSourceScore:   0.95,
			NoEvidenceSourceScore: 0.10,
		},
		Server: ServerConfig{
			Port:         5000,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers:  4,
			ProviderRate:  1.0,
			ProviderBurst: 5,
		},
		Output: OutputConfig{},
	}
}
