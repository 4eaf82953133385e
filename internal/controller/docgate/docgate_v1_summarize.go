package docgate

import (
	"context"

	"github.com/gogf/gf/v2/frame/g"

	v1 "github.com/carevault/docgate/api/docgate/v1"
	"github.com/carevault/docgate/core/file_store"
)

func (c *ControllerV1) Summarize(ctx context.Context, req *v1.SummarizeReq) (res *v1.SummarizeRes, err error) {
	g.Log().Infof(ctx, "Summarize request received - Key: %s", req.Key)

	bundle, err := file_store.FetchBundle(ctx, req.Key)
	if err != nil {
		return nil, err
	}

	summary, err := c.rag.Summarize(ctx, bundle.Fragments())
	if err != nil {
		return nil, err
	}

	g.RequestFromCtx(ctx).Response.Write(summary)
	return nil, nil
}
