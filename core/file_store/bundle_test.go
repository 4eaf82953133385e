package file_store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carevault/docgate/core/errors"
)

func TestParseBundle(t *testing.T) {
	payload := []byte(`{"dataSet":[{"extractedText":"A"},{"extractedText":"B"}]}`)

	bundle, err := ParseBundle(payload)
	require.NoError(t, err)
	require.Len(t, bundle.DataSet, 2)

	// Fragment order matches stored order.
	assert.Equal(t, []string{"A", "B"}, bundle.Fragments())
}

func TestParseBundleEmptyDataSet(t *testing.T) {
	bundle, err := ParseBundle([]byte(`{"dataSet":[]}`))
	require.NoError(t, err)
	assert.Empty(t, bundle.Fragments())
}

func TestParseBundleIgnoresUnknownFields(t *testing.T) {
	payload := []byte(`{"dataSet":[{"extractedText":"A","fileName":"a.pdf"}],"owner":"u1"}`)

	bundle, err := ParseBundle(payload)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, bundle.Fragments())
}

func TestParseBundleInvalidJSON(t *testing.T) {
	_, err := ParseBundle([]byte(`not json`))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrBundleDecode))
}
