package cmd

import (
	"context"

	"github.com/gogf/gf/v2/frame/g"

	"github.com/carevault/docgate/core/embedding"
	"github.com/carevault/docgate/core/extract"
	"github.com/carevault/docgate/core/file_store"
	"github.com/carevault/docgate/core/model"
	"github.com/carevault/docgate/core/rag"
	"github.com/carevault/docgate/core/vector_store"
	"github.com/carevault/docgate/internal/controller/docgate"
)

// bootstrap constructs every long-lived collaborator once and injects
// the set into the controller. Requests share these clients but carry
// no other state between each other.
func bootstrap(ctx context.Context) (*docgate.ControllerV1, error) {
	if err := file_store.InitStorage(ctx); err != nil {
		return nil, err
	}

	store, err := vector_store.InitializeMilvusStore(ctx)
	if err != nil {
		return nil, err
	}

	embedder, err := embedding.NewOpenAIEmbedder(ctx)
	if err != nil {
		return nil, err
	}

	chatService, err := model.NewServiceFromConfig(ctx)
	if err != nil {
		return nil, err
	}

	extractor, err := extract.NewService(ctx)
	if err != nil {
		return nil, err
	}

	topK := g.Cfg().MustGet(ctx, "rag.topK", 1).Int()
	orchestrator := rag.NewOrchestrator(embedder, store, chatService, topK)

	g.Log().Info(ctx, "✓ All components initialized successfully")
	return docgate.NewV1(orchestrator, extractor), nil
}
