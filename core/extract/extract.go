package extract

import (
	"context"

	"github.com/gogf/gf/v2/frame/g"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/carevault/docgate/core/errors"
)

// Service holds the clients for the three single-shot extraction
// upstreams: OCR (PDF), transcription (audio) and captioning (image).
// Each operation is one outbound call with no retry; a failed call
// fails the whole request.
type Service struct {
	gemini      *genai.Client
	geminiModel string

	ocrAPIKey string

	workersAccountID string
	workersAPIToken  string
	whisperModel     string
}

// NewService reads the `ocr`, `gemini` and `workersai` config sections.
// Unconfigured upstreams leave their client nil; the matching route
// fails with an upstream error when hit.
func NewService(ctx context.Context) (*Service, error) {
	s := &Service{
		ocrAPIKey:        g.Cfg().MustGet(ctx, "ocr.apiKey", "").String(),
		geminiModel:      g.Cfg().MustGet(ctx, "gemini.model", "gemini-1.5-pro").String(),
		workersAccountID: g.Cfg().MustGet(ctx, "workersai.accountId", "").String(),
		workersAPIToken:  g.Cfg().MustGet(ctx, "workersai.apiToken", "").String(),
		whisperModel:     g.Cfg().MustGet(ctx, "workersai.whisperModel", "@cf/openai/whisper").String(),
	}

	geminiKey := g.Cfg().MustGet(ctx, "gemini.apiKey", "").String()
	if geminiKey != "" {
		client, err := genai.NewClient(ctx, option.WithAPIKey(geminiKey))
		if err != nil {
			return nil, errors.Newf(errors.ErrUpstreamModel, "failed to create Gemini client: %v", err)
		}
		s.gemini = client
	}

	return s, nil
}

// Close releases the captioning client.
func (s *Service) Close() error {
	if s.gemini != nil {
		return s.gemini.Close()
	}
	return nil
}
