package extract

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/gogf/gf/v2/frame/g"

	"github.com/carevault/docgate/core/errors"
)

// whisperResponse is the Workers AI run-model response envelope.
type whisperResponse struct {
	Result struct {
		Text string `json:"text"`
	} `json:"result"`
	Success bool `json:"success"`
	Errors  []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// ExtractAudio downloads the audio at audioURL and transcribes it with
// the Workers AI Whisper model, returning the transcript text.
func (s *Service) ExtractAudio(ctx context.Context, audioURL string) (string, error) {
	if s.workersAccountID == "" || s.workersAPIToken == "" {
		return "", errors.Newf(errors.ErrExtractionFailed, "workersai credentials are not configured")
	}

	audio, err := fetchBytes(ctx, audioURL)
	if err != nil {
		return "", err
	}

	runURL := fmt.Sprintf("https://api.cloudflare.com/client/v4/accounts/%s/ai/run/%s",
		s.workersAccountID, s.whisperModel)

	resp, err := g.Client().
		Header(map[string]string{"Authorization": "Bearer " + s.workersAPIToken}).
		ContentType("application/octet-stream").
		Post(ctx, runURL, audio)
	if err != nil {
		return "", errors.Newf(errors.ErrExtractionFailed, "transcription request failed: %v", err)
	}
	defer resp.Close()

	body := resp.ReadAll()
	if resp.StatusCode != 200 {
		return "", errors.Newf(errors.ErrExtractionFailed, "transcription service returned status %s: %s", resp.Status, body)
	}

	var parsed whisperResponse
	if err := sonic.Unmarshal(body, &parsed); err != nil {
		return "", errors.Newf(errors.ErrExtractionFailed, "failed to decode transcription response: %v", err)
	}
	if !parsed.Success {
		msg := "unknown error"
		if len(parsed.Errors) > 0 {
			msg = parsed.Errors[0].Message
		}
		return "", errors.Newf(errors.ErrExtractionFailed, "transcription failed: %s", msg)
	}

	return parsed.Result.Text, nil
}

// fetchBytes downloads a remote resource for forwarding to an upstream
// model.
func fetchBytes(ctx context.Context, resourceURL string) ([]byte, error) {
	resp, err := g.Client().Get(ctx, resourceURL)
	if err != nil {
		return nil, errors.Newf(errors.ErrExtractionFailed, "failed to download %s: %v", resourceURL, err)
	}
	defer resp.Close()

	if resp.StatusCode != 200 {
		return nil, errors.Newf(errors.ErrExtractionFailed, "download of %s returned status %s", resourceURL, resp.Status)
	}

	return resp.ReadAll(), nil
}
