package vector_store

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/bytedance/sonic"
	"github.com/milvus-io/milvus/client/v2/column"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ VectorStore = (*MilvusStore)(nil)

func TestNewVectorStoreNilConfig(t *testing.T) {
	_, err := NewVectorStore(nil)
	assert.Error(t, err)
}

func TestNewVectorStoreUnsupportedType(t *testing.T) {
	_, err := NewVectorStore(&VectorStoreConfig{Type: "pinecone"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported vector store type")
}

func TestNewMilvusStoreInvalidClient(t *testing.T) {
	_, err := NewMilvusStore(&VectorStoreConfig{
		Type:       VectorStoreTypeMilvus,
		Client:     "not a client",
		Collection: "passages",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "client must be")
}

func TestPartitionName(t *testing.T) {
	tests := []struct {
		namespace string
		expected  string
	}{
		{"u1", "ns_u1"},
		{"User_42", "ns_User_42"},
		{"user@example.com", "ns_user_example_com"},
		{"a-b c", "ns_a_b_c"},
		{"", "ns_"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, partitionName(tt.namespace))
	}
}

func TestNamespaceFilter(t *testing.T) {
	assert.Equal(t, `namespace == "u1"`, namespaceFilter("u1"))
	// Quotes in a namespace value cannot break out of the expression.
	assert.Equal(t, `namespace == "x\"y"`, namespaceFilter(`x"y`))
}

func TestNamespaceFilterSeparatesCollidingPartitions(t *testing.T) {
	// "a_b" and "a.b" sanitize to the same partition name, so the
	// partition alone cannot keep these users apart. The scalar filter
	// still distinguishes their records.
	require.Equal(t, partitionName("a_b"), partitionName("a.b"))
	assert.NotEqual(t, namespaceFilter("a_b"), namespaceFilter("a.b"))

	require.Equal(t, partitionName("user@example.com"), partitionName("user_example_com"))
	assert.NotEqual(t, namespaceFilter("user@example.com"), namespaceFilter("user_example_com"))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "abc", truncateString("abc", 10))
	assert.Equal(t, "ab", truncateString("abcdef", 2))
	assert.Equal(t, "", truncateString("", 5))
}

func TestTruncateStringRuneBoundary(t *testing.T) {
	s := strings.Repeat("é", 10) // 2 bytes per rune
	out := truncateString(s, 5)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, "éé", out)
}

func TestFloat64ToFloat32(t *testing.T) {
	out := float64ToFloat32([]float64{0.5, 1.25, -2})
	require.Len(t, out, 3)
	assert.Equal(t, float32(0.5), out[0])
	assert.Equal(t, float32(1.25), out[1])
	assert.Equal(t, float32(-2), out[2])
}

func TestConvertResultsToMatches(t *testing.T) {
	meta, err := sonic.Marshal(RecordMetadata{UserID: "u1", ExtractedText: "The sky is blue."})
	require.NoError(t, err)

	columns := []column.Column{
		column.NewColumnVarChar("id", []string{"d1"}),
		column.NewColumnVarChar("text", []string{"The sky is blue."}),
		column.NewColumnJSONBytes("metadata", [][]byte{meta}),
	}

	matches, err := convertResultsToMatches(columns, []float32{0.93})
	require.NoError(t, err)
	require.Len(t, matches, 1)

	assert.Equal(t, "d1", matches[0].ID)
	assert.Equal(t, float32(0.93), matches[0].Score)
	assert.Equal(t, "u1", matches[0].Metadata.UserID)
	assert.Equal(t, "The sky is blue.", matches[0].Metadata.ExtractedText)
}

func TestConvertResultsToMatchesTextFallback(t *testing.T) {
	// metadata 缺 extractedText 时回退到 text 列
	meta, err := sonic.Marshal(map[string]string{"userId": "u1"})
	require.NoError(t, err)

	columns := []column.Column{
		column.NewColumnVarChar("id", []string{"d1"}),
		column.NewColumnVarChar("text", []string{"stored passage"}),
		column.NewColumnJSONBytes("metadata", [][]byte{meta}),
	}

	matches, err := convertResultsToMatches(columns, []float32{0.5})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "stored passage", matches[0].Metadata.ExtractedText)
}

func TestConvertResultsToMatchesEmpty(t *testing.T) {
	matches, err := convertResultsToMatches(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, matches)
}
