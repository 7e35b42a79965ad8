package response

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"StrideAI/app/common/consts/errno"

	"github.com/zeromicro/x/errors"
)

func TestErrorHandler(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{name: "coded", err: errors.New(errno.ProductNotFound, "product not found"), wantStatus: http.StatusOK, wantCode: errno.ProductNotFound},
		{name: "wrapped coded", err: fmt.Errorf("logic: %w", errors.New(errno.SessionBusy, "busy")), wantStatus: http.StatusOK, wantCode: errno.SessionBusy},
		{name: "plain", err: stderrors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: errno.InternalError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := ErrorHandler(context.Background(), tc.err)
			if status != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, status)
			}
			resp, ok := body.(Response)
			if !ok || resp.StatusCode != tc.wantCode {
				t.Fatalf("unexpected body %+v", body)
			}
		})
	}
}

func TestParamError(t *testing.T) {
	if ParamError(nil) != nil {
		t.Fatal("nil stays nil")
	}

	var codeMsg *errors.CodeMsg
	if err := ParamError(stderrors.New("field text is not set")); !stderrors.As(err, &codeMsg) || codeMsg.Code != errno.InvalidParam {
		t.Fatalf("expected InvalidParam, got %v", err)
	}

	coded := errors.New(errno.EmptyMessage, "message is empty")
	if err := ParamError(coded); err != coded {
		t.Fatalf("coded errors pass through, got %v", err)
	}
}
