package docgate

import (
	"context"

	"github.com/gogf/gf/v2/frame/g"

	v1 "github.com/carevault/docgate/api/docgate/v1"
	"github.com/carevault/docgate/core/file_store"
)

func (c *ControllerV1) Upload(ctx context.Context, req *v1.UploadReq) (res *v1.UploadRes, err error) {
	g.Log().Infof(ctx, "Upload request received - Key: %s", req.Key)

	uploadURL, err := file_store.PresignUpload(ctx, req.Key)
	if err != nil {
		return nil, err
	}

	return &v1.UploadRes{
		Key:       req.Key,
		UploadURL: uploadURL,
	}, nil
}
