package extract

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOCRRequestURL(t *testing.T) {
	requestURL := buildOCRRequestURL("key123", "https://storage.example.com/bucket/doc.pdf?sig=abc")

	assert.True(t, strings.HasPrefix(requestURL, ocrEndpoint+"?"))

	parsed, err := url.Parse(requestURL)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "key123", query.Get("apikey"))
	assert.Equal(t, "PDF", query.Get("filetype"))
	// The presigned URL survives round-tripping through the query string.
	assert.Equal(t, "https://storage.example.com/bucket/doc.pdf?sig=abc", query.Get("url"))
}
