package docgate

import (
	"context"

	"github.com/gogf/gf/v2/frame/g"

	v1 "github.com/carevault/docgate/api/docgate/v1"
)

func (c *ControllerV1) Ask(ctx context.Context, req *v1.AskReq) (res *v1.AskRes, err error) {
	g.Log().Infof(ctx, "Ask request received - UserID: %s, Question: %s, TopK: %d", req.UserID, req.Question, req.TopK)

	answer, err := c.rag.Ask(ctx, req.UserID, req.Question, req.TopK)
	if err != nil {
		return nil, err
	}

	g.RequestFromCtx(ctx).Response.Write(answer)
	return nil, nil
}
