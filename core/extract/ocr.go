package extract

import (
	"context"
	"net/url"

	"github.com/gogf/gf/v2/frame/g"

	"github.com/carevault/docgate/core/errors"
)

const ocrEndpoint = "https://api.ocr.space/parse/imageurl"

// buildOCRRequestURL builds the OCR.space parse-by-url request.
func buildOCRRequestURL(apiKey, fileURL string) string {
	query := url.Values{}
	query.Set("apikey", apiKey)
	query.Set("filetype", "PDF")
	query.Set("url", fileURL)
	return ocrEndpoint + "?" + query.Encode()
}

// ExtractPDF proxies a PDF URL to the OCR service and returns the raw
// service response text verbatim.
func (s *Service) ExtractPDF(ctx context.Context, fileURL string) (string, error) {
	if s.ocrAPIKey == "" {
		return "", errors.Newf(errors.ErrExtractionFailed, "ocr.apiKey is not configured")
	}

	resp, err := g.Client().Get(ctx, buildOCRRequestURL(s.ocrAPIKey, fileURL))
	if err != nil {
		return "", errors.Newf(errors.ErrExtractionFailed, "OCR request failed: %v", err)
	}
	defer resp.Close()

	if resp.StatusCode != 200 {
		return "", errors.Newf(errors.ErrExtractionFailed, "OCR service returned status %s", resp.Status)
	}

	return resp.ReadAllString(), nil
}
