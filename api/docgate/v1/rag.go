package v1

import (
	"github.com/gogf/gf/v2/frame/g"
)

type VectorizeReq struct {
	g.Meta        `path:"/vectorize" method:"post" tags:"rag" no_wrap_resp:"true"`
	UserID        string `json:"userId" v:"required"`
	ExtractedText string `json:"extractedText" v:"required"`
	ID            string `json:"id"` // generated when absent
}

type VectorizeRes struct {
	g.Meta `mime:"application/json"`
	ID     string `json:"id"`
}

type AskReq struct {
	g.Meta   `path:"/ask-me-anything" method:"post" tags:"rag"`
	Question string `json:"question" v:"required"`
	UserID   string `json:"userId" v:"required"`
	TopK     int    `json:"topK"` // default 1: only the best match is used as context
}

type AskRes struct {
	g.Meta `mime:"text/plain"`
}

type SummarizeReq struct {
	g.Meta `path:"/summarize-all-data/:key" method:"get" tags:"rag"`
	Key    string `json:"key" v:"required"`
}

type SummarizeRes struct {
	g.Meta `mime:"text/plain"`
}
