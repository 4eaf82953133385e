package embedding

import (
	"context"

	openaiEmbedding "github.com/cloudwego/eino-ext/components/embedding/openai"
	"github.com/gogf/gf/v2/frame/g"

	"github.com/carevault/docgate/core/errors"
)

// OpenAIEmbedder calls an OpenAI-compatible /embeddings endpoint.
type OpenAIEmbedder struct {
	embedder *openaiEmbedding.Embedder
	dim      int
}

// NewOpenAIEmbedder builds the embedder from the `embedding` config
// section (apiKey, baseURL, model, dimensions).
func NewOpenAIEmbedder(ctx context.Context) (*OpenAIEmbedder, error) {
	apiKey := g.Cfg().MustGet(ctx, "embedding.apiKey", "").String()
	baseURL := g.Cfg().MustGet(ctx, "embedding.baseURL", "").String()
	model := g.Cfg().MustGet(ctx, "embedding.model", "").String()
	dim := g.Cfg().MustGet(ctx, "embedding.dimensions", 1024).Int()

	if apiKey == "" {
		return nil, errors.Newf(errors.ErrInvalidParameter, "embedding apiKey is required")
	}
	if baseURL == "" {
		return nil, errors.Newf(errors.ErrInvalidParameter, "embedding baseURL is required")
	}
	if model == "" {
		return nil, errors.Newf(errors.ErrInvalidParameter, "embedding model is required")
	}

	embedder, err := openaiEmbedding.NewEmbedder(ctx, &openaiEmbedding.EmbeddingConfig{
		APIKey:     apiKey,
		BaseURL:    baseURL,
		Model:      model,
		Dimensions: &dim,
	})
	if err != nil {
		return nil, errors.Newf(errors.ErrUpstreamModel, "failed to create embedder: %v", err)
	}

	return &OpenAIEmbedder{
		embedder: embedder,
		dim:      dim,
	}, nil
}

// Dimensions returns the configured vector dimension.
func (e *OpenAIEmbedder) Dimensions() int {
	return e.dim
}

// EmbedText embeds a single text. An empty text is passed through
// unchanged; the upstream model decides what it means. Repeated calls
// with identical text recompute unconditionally.
func (e *OpenAIEmbedder) EmbedText(ctx context.Context, text string) ([]float64, error) {
	vectors, err := e.embedder.EmbedStrings(ctx, []string{text})
	if err != nil {
		return nil, errors.Newf(errors.ErrEmbeddingFailed, "embedding call failed: %v", err)
	}
	if len(vectors) != 1 {
		return nil, errors.Newf(errors.ErrEmbeddingFailed, "invalid return length of vector, got=%d, expected=1", len(vectors))
	}
	return vectors[0], nil
}
