package rag

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carevault/docgate/core/errors"
	"github.com/carevault/docgate/core/vector_store"
)

// fakeEmbedder returns a fixed-dimension vector derived from the text
// length so different texts get different vectors.
type fakeEmbedder struct {
	calls []string
}

func (f *fakeEmbedder) EmbedText(ctx context.Context, text string) ([]float64, error) {
	f.calls = append(f.calls, text)
	return []float64{float64(len(text)), 1, 0}, nil
}

// fakeStore is an in-memory namespaced index with upsert semantics.
type fakeStore struct {
	records map[string]map[string]vector_store.VectorRecord // namespace -> id -> record
	order   map[string][]string                             // namespace -> id insertion order
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		records: make(map[string]map[string]vector_store.VectorRecord),
		order:   make(map[string][]string),
	}
}

func (f *fakeStore) Upsert(ctx context.Context, record vector_store.VectorRecord) (string, error) {
	ns := record.Namespace
	if f.records[ns] == nil {
		f.records[ns] = make(map[string]vector_store.VectorRecord)
	}
	if _, exists := f.records[ns][record.ID]; !exists {
		f.order[ns] = append(f.order[ns], record.ID)
	}
	f.records[ns][record.ID] = record
	return record.ID, nil
}

func (f *fakeStore) Query(ctx context.Context, vector []float64, opts vector_store.QueryOptions) ([]vector_store.Match, error) {
	var matches []vector_store.Match
	for _, id := range f.order[opts.Namespace] {
		if len(matches) >= opts.TopK {
			break
		}
		record := f.records[opts.Namespace][id]
		matches = append(matches, vector_store.Match{
			ID:       record.ID,
			Score:    1,
			Metadata: record.Metadata,
		})
	}
	if matches == nil {
		matches = []vector_store.Match{}
	}
	return matches, nil
}

// fakeChat records every prompt it receives.
type fakeChat struct {
	calls    int
	messages []*schema.Message
	answer   string
}

func (f *fakeChat) Generate(ctx context.Context, messages []*schema.Message) (string, error) {
	f.calls++
	f.messages = messages
	return f.answer, nil
}

func newTestOrchestrator() (*Orchestrator, *fakeEmbedder, *fakeStore, *fakeChat) {
	embedder := &fakeEmbedder{}
	store := newFakeStore()
	chat := &fakeChat{answer: "the answer"}
	return NewOrchestrator(embedder, store, chat, 1), embedder, store, chat
}

func TestVectorizeThenAsk(t *testing.T) {
	ctx := context.Background()
	orchestrator, _, store, chat := newTestOrchestrator()

	id, err := orchestrator.Vectorize(ctx, "u1", "The sky is blue.", "d1")
	require.NoError(t, err)
	assert.Equal(t, "d1", id)

	record := store.records["u1"]["d1"]
	assert.Equal(t, "u1", record.Namespace)
	assert.Equal(t, "u1", record.Metadata.UserID)
	assert.Equal(t, "The sky is blue.", record.Metadata.ExtractedText)

	answer, err := orchestrator.Ask(ctx, "u1", "What color is the sky?", 0)
	require.NoError(t, err)
	assert.Equal(t, "the answer", answer)

	// The completion call receives the two-message grounded prompt.
	require.Len(t, chat.messages, 2)
	assert.Equal(t, "Question: What color is the sky?", chat.messages[1].Content)
	assert.Contains(t, chat.messages[0].Content, "The sky is blue.")
}

func TestAskEmptyNamespace(t *testing.T) {
	ctx := context.Background()
	orchestrator, _, _, chat := newTestOrchestrator()

	_, err := orchestrator.Ask(ctx, "u2", "anything", 0)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrNoContextFound))

	// No completion call is made when there is no context.
	assert.Equal(t, 0, chat.calls)
}

func TestAskNamespaceIsolation(t *testing.T) {
	ctx := context.Background()
	orchestrator, _, _, chat := newTestOrchestrator()

	_, err := orchestrator.Vectorize(ctx, "u1", "u1's private note", "d1")
	require.NoError(t, err)

	// u2 never sees u1's records.
	_, err = orchestrator.Ask(ctx, "u2", "what is the note?", 0)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrNoContextFound))
	assert.Equal(t, 0, chat.calls)
}

func TestVectorizeUpsertSemantics(t *testing.T) {
	ctx := context.Background()
	orchestrator, _, store, chat := newTestOrchestrator()

	_, err := orchestrator.Vectorize(ctx, "u1", "old text", "d1")
	require.NoError(t, err)
	_, err = orchestrator.Vectorize(ctx, "u1", "new text", "d1")
	require.NoError(t, err)

	// Re-ingesting the same id replaces the record instead of
	// duplicating it.
	assert.Len(t, store.records["u1"], 1)

	_, err = orchestrator.Ask(ctx, "u1", "what is the text?", 0)
	require.NoError(t, err)
	assert.Contains(t, chat.messages[0].Content, "new text")
	assert.NotContains(t, chat.messages[0].Content, "old text")
}

func TestVectorizeGeneratesMissingID(t *testing.T) {
	ctx := context.Background()
	orchestrator, _, _, _ := newTestOrchestrator()

	id, err := orchestrator.Vectorize(ctx, "u1", "some text", "")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestVectorizeValidation(t *testing.T) {
	ctx := context.Background()
	orchestrator, embedder, _, _ := newTestOrchestrator()

	_, err := orchestrator.Vectorize(ctx, "", "text", "d1")
	assert.True(t, errors.IsCode(err, errors.ErrInvalidParameter))

	_, err = orchestrator.Vectorize(ctx, "u1", "", "d1")
	assert.True(t, errors.IsCode(err, errors.ErrInvalidParameter))

	// Validation failures never reach the embedding service.
	assert.Empty(t, embedder.calls)
}

func TestSummarizeJoinsFragments(t *testing.T) {
	ctx := context.Background()
	orchestrator, _, _, chat := newTestOrchestrator()

	summary, err := orchestrator.Summarize(ctx, []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, "the answer", summary)

	// Fragments are joined in stored order, each followed by a newline.
	require.Len(t, chat.messages, 2)
	assert.Equal(t, "A\nB\n", chat.messages[1].Content)
}
