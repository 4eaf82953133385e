package v1

import (
	"github.com/gogf/gf/v2/frame/g"
)

type ExtractPDFReq struct {
	g.Meta `path:"/extract-pdf" method:"post" tags:"extract" no_wrap_resp:"true"`
	URL    string `json:"url" v:"required"`
}

type ExtractPDFRes struct {
	g.Meta `mime:"application/json"`
	// Response carries the raw OCR service payload verbatim.
	Response string `json:"response"`
}

type ExtractAudioReq struct {
	g.Meta `path:"/extract-audio" method:"post" tags:"extract"`
	URL    string `json:"url" v:"required"`
}

type ExtractAudioRes struct {
	g.Meta `mime:"text/plain"`
}

type ExtractImageReq struct {
	g.Meta `path:"/extract-image" method:"post" tags:"extract"`
	URL    string `json:"url" v:"required"`
}

type ExtractImageRes struct {
	g.Meta `mime:"text/plain"`
}
