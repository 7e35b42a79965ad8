package util

import (
	"StrideAI/app/common/consts/biz"
	"StrideAI/app/common/consts/errno"
	"context"
	"net/http"

	"github.com/zeromicro/x/errors"
)

func SessionIdFromCtx(ctx context.Context) (string, error) {
	if ctx == nil {
		return "", errors.New(int(errno.SessionMissing), "missing context")
	}

	switch val := ctx.Value(biz.SESSION_KEY).(type) {
	case string:
		if val != "" {
			return val, nil
		}
	}

	return "", errors.New(int(errno.SessionMissing), "session missing")
}

func InjectSessionId2Ctx(r *http.Request, sessionId string) {
	ctx := context.WithValue(r.Context(), biz.SESSION_KEY, sessionId)
	*r = *r.WithContext(ctx)
}
