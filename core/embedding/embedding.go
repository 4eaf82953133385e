package embedding

import (
	"context"
)

// Embedder turns one text into a fixed-dimension vector. The gateway
// always embeds a single text per call, even though the upstream API
// accepts batches.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float64, error)
}
