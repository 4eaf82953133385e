package docgate

import (
	"context"

	"github.com/gogf/gf/v2/frame/g"

	v1 "github.com/carevault/docgate/api/docgate/v1"
)

func (c *ControllerV1) ExtractPDF(ctx context.Context, req *v1.ExtractPDFReq) (res *v1.ExtractPDFRes, err error) {
	g.Log().Infof(ctx, "ExtractPDF request received - URL: %s", req.URL)

	text, err := c.extractor.ExtractPDF(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	return &v1.ExtractPDFRes{Response: text}, nil
}

func (c *ControllerV1) ExtractAudio(ctx context.Context, req *v1.ExtractAudioReq) (res *v1.ExtractAudioRes, err error) {
	g.Log().Infof(ctx, "ExtractAudio request received - URL: %s", req.URL)

	transcript, err := c.extractor.ExtractAudio(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	g.RequestFromCtx(ctx).Response.Write(transcript)
	return nil, nil
}

func (c *ControllerV1) ExtractImage(ctx context.Context, req *v1.ExtractImageReq) (res *v1.ExtractImageRes, err error) {
	g.Log().Infof(ctx, "ExtractImage request received - URL: %s", req.URL)

	caption, err := c.extractor.ExtractImage(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	g.RequestFromCtx(ctx).Response.Write(caption)
	return nil, nil
}
