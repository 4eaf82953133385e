package cmd

import (
	"net/http"
	"reflect"

	"github.com/gogf/gf/v2/errors/gcode"
	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/net/ghttp"
	"github.com/gogf/gf/v2/util/gmeta"

	"github.com/carevault/docgate/core/errors"
)

// MiddlewareHandlerResponse is the default middleware handling handler
// response object and its error. Business errors carry their own HTTP
// status; plain-text handlers write directly and are left untouched.
func MiddlewareHandlerResponse(r *ghttp.Request) {
	r.Middleware.Next()

	// There's custom buffer content, it then exits current handler.
	if r.Response.BufferLength() > 0 || r.Response.Writer.BytesWritten() > 0 {
		return
	}

	var (
		msg  string
		err  = r.GetError()
		res  = r.GetHandlerResponse()
		code = gerror.Code(err)
	)
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			r.Response.WriteStatus(appErr.Code.HTTPStatusCode())
			r.Response.ClearBuffer()
			r.Response.WriteJson(ghttp.DefaultHandlerResponse{
				Code:    int(appErr.Code),
				Message: appErr.Message,
				Data:    nil,
			})
			return
		}
		if code == gcode.CodeNil {
			code = gcode.CodeInternalError
		}
		if code == gcode.CodeValidationFailed {
			r.Response.WriteStatus(http.StatusBadRequest)
		} else {
			r.Response.WriteStatus(http.StatusInternalServerError)
		}
		r.Response.ClearBuffer()
		r.Response.WriteJson(ghttp.DefaultHandlerResponse{
			Code:    code.Code(),
			Message: err.Error(),
			Data:    nil,
		})
		return
	}

	if r.Response.Status > 0 && r.Response.Status != http.StatusOK {
		msg = http.StatusText(r.Response.Status)
		switch r.Response.Status {
		case http.StatusNotFound:
			code = gcode.CodeNotFound
			msg = "Not found"
		case http.StatusForbidden:
			code = gcode.CodeNotAuthorized
		default:
			code = gcode.CodeUnknown
		}
		err = gerror.NewCode(code, msg)
		r.SetError(err)
	} else {
		code = gcode.CodeOK
		msg = code.Message()
	}

	if noWrapResp(r) {
		r.Response.WriteJson(res)
		return
	}
	r.Response.WriteJson(ghttp.DefaultHandlerResponse{
		Code:    code.Code(),
		Message: msg,
		Data:    res,
	})
}

// noWrapResp 中间件中判断是否跳过统一响应包装
func noWrapResp(r *ghttp.Request) bool {
	handler := r.GetServeHandler().Handler
	if handler.Info.Type != nil && handler.Info.Type.NumIn() == 2 {
		var objectReq = reflect.New(handler.Info.Type.In(1))
		if v := gmeta.Get(objectReq, "no_wrap_resp"); !v.IsEmpty() {
			return v.Bool()
		}
	}
	return false
}
