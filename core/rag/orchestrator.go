package rag

import (
	"context"
	"strings"

	"github.com/gogf/gf/v2/frame/g"
	"github.com/google/uuid"

	"github.com/carevault/docgate/core/embedding"
	"github.com/carevault/docgate/core/errors"
	"github.com/carevault/docgate/core/model"
	"github.com/carevault/docgate/core/vector_store"
)

// Orchestrator composes the embedding service, the vector store and the
// completion service into the three gateway flows. All collaborators are
// constructor-injected so tests can substitute doubles. Every flow is
// strictly sequential and stateless per request.
type Orchestrator struct {
	embedder embedding.Embedder
	store    vector_store.VectorStore
	chat     model.ChatModel
	topK     int
}

// NewOrchestrator wires the three collaborators. topK is the default
// number of passages used as answer context; values below 1 fall back
// to 1, the single best match.
func NewOrchestrator(embedder embedding.Embedder, store vector_store.VectorStore, chat model.ChatModel, topK int) *Orchestrator {
	if topK < 1 {
		topK = 1
	}
	return &Orchestrator{
		embedder: embedder,
		store:    store,
		chat:     chat,
		topK:     topK,
	}
}

// Vectorize embeds extractedText and upserts it into the user's
// namespace. A missing id gets a generated one. The store's
// acknowledged id is returned.
func (o *Orchestrator) Vectorize(ctx context.Context, userID, extractedText, id string) (string, error) {
	if userID == "" {
		return "", errors.Newf(errors.ErrInvalidParameter, "userId is required")
	}
	if extractedText == "" {
		return "", errors.Newf(errors.ErrInvalidParameter, "extractedText is required")
	}
	if id == "" {
		id = uuid.New().String()
	}

	vector, err := o.embedder.EmbedText(ctx, extractedText)
	if err != nil {
		return "", err
	}

	ackID, err := o.store.Upsert(ctx, vector_store.VectorRecord{
		ID:        id,
		Vector:    vector,
		Namespace: userID,
		Metadata: vector_store.RecordMetadata{
			UserID:        userID,
			ExtractedText: extractedText,
		},
	})
	if err != nil {
		return "", err
	}

	g.Log().Infof(ctx, "Vectorized record '%s' for user '%s' (%d chars)", ackID, userID, len(extractedText))
	return ackID, nil
}

// Ask answers a question from the user's own namespace: embed the
// question, retrieve the best-matching stored passage, build the
// grounded prompt and complete it. A namespace without a single match
// fails with ErrNoContextFound before any completion call is made.
func (o *Orchestrator) Ask(ctx context.Context, userID, question string, topK int) (string, error) {
	if userID == "" {
		return "", errors.Newf(errors.ErrInvalidParameter, "userId is required")
	}
	if question == "" {
		return "", errors.Newf(errors.ErrInvalidParameter, "question is required")
	}
	if topK < 1 {
		topK = o.topK
	}

	vector, err := o.embedder.EmbedText(ctx, question)
	if err != nil {
		return "", err
	}

	matches, err := o.store.Query(ctx, vector, vector_store.QueryOptions{
		TopK:      topK,
		Namespace: userID,
	})
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", errors.Newf(errors.ErrNoContextFound, "no stored context found for user '%s'", userID)
	}

	// Only the top match grounds the answer; additional matches are
	// retrieval headroom, not synthesized context.
	contextText := matches[0].Metadata.ExtractedText

	messages, err := BuildQAPrompt(question, contextText)
	if err != nil {
		return "", errors.Newf(errors.ErrInternalError, "%v", err)
	}

	answer, err := o.chat.Generate(ctx, messages)
	if err != nil {
		return "", err
	}

	g.Log().Infof(ctx, "Answered question for user '%s' using record '%s' (score: %f)", userID, matches[0].ID, matches[0].Score)
	return answer, nil
}

// Summarize concatenates a bundle's extracted fragments in stored order
// and completes the summarization prompt over them. The vector store is
// not involved.
func (o *Orchestrator) Summarize(ctx context.Context, fragments []string) (string, error) {
	var sb strings.Builder
	for _, fragment := range fragments {
		sb.WriteString(fragment)
		sb.WriteString("\n")
	}

	messages, err := BuildSummaryPrompt(sb.String())
	if err != nil {
		return "", errors.Newf(errors.ErrInternalError, "%v", err)
	}

	summary, err := o.chat.Generate(ctx, messages)
	if err != nil {
		return "", err
	}

	g.Log().Infof(ctx, "Summarized %d fragment(s), %d chars of input", len(fragments), sb.Len())
	return summary, nil
}
