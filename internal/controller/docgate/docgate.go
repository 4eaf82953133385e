package docgate

import (
	"github.com/carevault/docgate/core/extract"
	"github.com/carevault/docgate/core/rag"
)

// ControllerV1 serves the v1 gateway surface. Collaborators are
// injected at construction so the routes stay testable.
type ControllerV1 struct {
	rag       *rag.Orchestrator
	extractor *extract.Service
}

func NewV1(orchestrator *rag.Orchestrator, extractor *extract.Service) *ControllerV1 {
	return &ControllerV1{
		rag:       orchestrator,
		extractor: extractor,
	}
}
