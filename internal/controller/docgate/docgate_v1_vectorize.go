package docgate

import (
	"context"

	"github.com/gogf/gf/v2/frame/g"

	v1 "github.com/carevault/docgate/api/docgate/v1"
)

func (c *ControllerV1) Vectorize(ctx context.Context, req *v1.VectorizeReq) (res *v1.VectorizeRes, err error) {
	g.Log().Infof(ctx, "Vectorize request received - UserID: %s, ID: %s, %d chars", req.UserID, req.ID, len(req.ExtractedText))

	id, err := c.rag.Vectorize(ctx, req.UserID, req.ExtractedText, req.ID)
	if err != nil {
		return nil, err
	}

	return &v1.VectorizeRes{ID: id}, nil
}
