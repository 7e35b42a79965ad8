package response

import (
	"context"
	stderrors "errors"
	"net/http"

	"StrideAI/app/common/consts/errno"

	"github.com/zeromicro/x/errors"
)

type Response struct {
	StatusCode int    `json:"code"`
	StatusMsg  string `json:"msg"`
}

func NewResponse(statusCode int, statusMsg string) Response {
	return Response{
		StatusCode: statusCode,
		StatusMsg:  statusMsg,
	}
}

// ErrorHandler renders coded errors as Response bodies, suitable for httpx.SetErrorHandlerCtx.
func ErrorHandler(_ context.Context, err error) (int, any) {
	var codeMsg *errors.CodeMsg
	if stderrors.As(err, &codeMsg) {
		return http.StatusOK, NewResponse(codeMsg.Code, codeMsg.Msg)
	}
	return http.StatusInternalServerError, NewResponse(errno.InternalError, err.Error())
}

// ParamError marks a request binding failure as InvalidParam unless it already carries a code.
func ParamError(err error) error {
	var codeMsg *errors.CodeMsg
	if err == nil || stderrors.As(err, &codeMsg) {
		return err
	}
	return errors.New(errno.InvalidParam, err.Error())
}
