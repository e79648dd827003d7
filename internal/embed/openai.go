package embed

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/veridex/veridex/internal/model"
)

// embeddingDimensions maps known embedding models to their vector width
var embeddingDimensions = map[string]int{
	"text-embedding-3-small": 1536,
	"text-embedding-3-large": 3072,
	"text-embedding-ada-002": 1536,
}

// OpenAIEncoder produces embeddings via the OpenAI embeddings API
type OpenAIEncoder struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIEncoder creates a new OpenAI-backed encoder
func NewOpenAIEncoder(cfg model.EncoderConfig) (*OpenAIEncoder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	embeddingModel := cfg.Model
	if embeddingModel == "" {
		embeddingModel = "text-embedding-3-small"
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &OpenAIEncoder{
		client:  openai.NewClient(cfg.APIKey),
		model:   embeddingModel,
		timeout: timeout,
	}, nil
}

// Name returns the backend name
func (e *OpenAIEncoder) Name() string {
	return "openai"
}

// Dimension returns the vector width of the configured model
func (e *OpenAIEncoder) Dimension() int {
	if dim, ok := embeddingDimensions[e.model]; ok {
		return dim
	}
	return embeddingDimensions["text-embedding-3-small"]
}

// Encode returns one embedding per text, in input order
func (e *OpenAIEncoder) Encode(ctx context.Context, texts []string) ([][]float64, error) {
	return encodeBatched(ctx, texts, e.encodeBatch)
}

func (e *OpenAIEncoder) encodeBatch(ctx context.Context, batch []string) ([][]float64, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.client.CreateEmbeddings(ctxWithTimeout, openai.EmbeddingRequest{
		Input: batch,
		Model: openai.EmbeddingModel(e.model),
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Data) != len(batch) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(batch), len(resp.Data))
	}

	vectors := make([][]float64, len(resp.Data))
	for i, item := range resp.Data {
		vec := make([]float64, len(item.Embedding))
		for j, v := range item.Embedding {
			vec[j] = float64(v)
		}
		vectors[i] = vec
	}
	return vectors, nil
}
