package v1

import (
	"github.com/gogf/gf/v2/frame/g"
)

type UploadReq struct {
	g.Meta `path:"/upload/:key" method:"post" tags:"storage" no_wrap_resp:"true"`
	Key    string `json:"key" v:"required"`
}

type UploadRes struct {
	g.Meta    `mime:"application/json"`
	Key       string `json:"key"`
	UploadURL string `json:"uploadURL"`
}

type DownloadReq struct {
	g.Meta `path:"/download/:key" method:"get" tags:"storage"`
	Key    string `json:"key" v:"required"`
}

// DownloadRes is empty; the handler writes the presigned URL as the
// plain response body.
type DownloadRes struct {
	g.Meta `mime:"text/plain"`
}
