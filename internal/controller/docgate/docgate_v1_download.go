package docgate

import (
	"context"

	"github.com/gogf/gf/v2/frame/g"

	v1 "github.com/carevault/docgate/api/docgate/v1"
	"github.com/carevault/docgate/core/file_store"
)

func (c *ControllerV1) Download(ctx context.Context, req *v1.DownloadReq) (res *v1.DownloadRes, err error) {
	g.Log().Infof(ctx, "Download request received - Key: %s", req.Key)

	downloadURL, err := file_store.PresignDownload(ctx, req.Key)
	if err != nil {
		return nil, err
	}

	// The response body is the URL string itself.
	g.RequestFromCtx(ctx).Response.Write(downloadURL)
	return nil, nil
}
