package extract

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"github.com/carevault/docgate/core/errors"
)

const captionPrompt = "Describe the contents of this image in detail."

// ExtractImage downloads the image at imageURL and captions it with
// Gemini, returning the generated description text.
func (s *Service) ExtractImage(ctx context.Context, imageURL string) (string, error) {
	if s.gemini == nil {
		return "", errors.Newf(errors.ErrExtractionFailed, "gemini.apiKey is not configured")
	}

	imageData, err := fetchBytes(ctx, imageURL)
	if err != nil {
		return "", err
	}

	model := s.gemini.GenerativeModel(s.geminiModel)
	model.SetTemperature(0.4)
	model.SetTopK(32)
	model.SetTopP(1)
	model.SetMaxOutputTokens(4096)

	resp, err := model.GenerateContent(ctx,
		genai.ImageData("jpeg", imageData),
		genai.Text(captionPrompt),
	)
	if err != nil {
		return "", errors.Newf(errors.ErrExtractionFailed, "captioning request failed: %v", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.Newf(errors.ErrExtractionFailed, "captioning returned no candidates")
	}

	var caption strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			caption.WriteString(string(txt))
		}
	}
	if caption.Len() == 0 {
		return "", errors.Newf(errors.ErrExtractionFailed, "captioning returned no text parts")
	}

	return caption.String(), nil
}
