package rag

import (
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQAPrompt(t *testing.T) {
	messages, err := BuildQAPrompt("What color is the sky?", "The sky is blue.")
	require.NoError(t, err)

	// The QA prompt is always exactly two messages.
	require.Len(t, messages, 2)
	assert.Equal(t, schema.System, messages[0].Role)
	assert.Equal(t, schema.User, messages[1].Role)

	// The user message carries the literal question, untransformed.
	assert.Equal(t, "Question: What color is the sky?", messages[1].Content)

	// The system message carries the retrieved context.
	assert.Contains(t, messages[0].Content, "The sky is blue.")
	assert.Contains(t, messages[0].Content, "formal and precise tone")
}

func TestBuildQAPromptEmptyContext(t *testing.T) {
	messages, err := BuildQAPrompt("anything", "")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Question: anything", messages[1].Content)
}

func TestBuildSummaryPrompt(t *testing.T) {
	messages, err := BuildSummaryPrompt("A\nB\n")
	require.NoError(t, err)

	require.Len(t, messages, 2)
	assert.Equal(t, schema.System, messages[0].Role)
	assert.Equal(t, schema.User, messages[1].Role)

	// The full concatenated text is passed through whole.
	assert.Equal(t, "A\nB\n", messages[1].Content)
	assert.Contains(t, messages[0].Content, "paragraph form")
}
