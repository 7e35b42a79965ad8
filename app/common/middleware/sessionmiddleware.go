package middleware

import (
	"crypto/rand"
	"net/http"
	"strings"
	"time"

	"StrideAI/app/common/consts/biz"
	"StrideAI/app/common/consts/errno"
	"StrideAI/app/common/snowflake"
	"StrideAI/app/common/util"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/x/errors"
)

type SessionMiddleware struct {
	secret []byte
	ttl    time.Duration
	newId  func() string
}

// NewSessionMiddleware signs session tokens with secret. An empty secret gets a random one, so
// sessions do not survive a restart.
func NewSessionMiddleware(secret string) *SessionMiddleware {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			logx.Must(err)
		}
		logx.Info("no session secret configured, using a random one")
	}
	return &SessionMiddleware{
		secret: key,
		ttl:    biz.SessionCookieExpire,
		newId:  snowflake.NextString,
	}
}

// Handle resolves the shopper's session from the signed cookie (or header). Missing, forged or
// expired tokens get a fresh session.
func (m *SessionMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if cookie, err := r.Cookie(biz.SESSIONCOOKIE); err == nil {
			token = strings.TrimSpace(cookie.Value)
		} else if headerToken := r.Header.Get(biz.SESSIONCOOKIE); headerToken != "" {
			token = strings.TrimSpace(headerToken)
		}

		sessionId := ""
		if token != "" {
			id, err := parseSessionToken(token, m.secret)
			if err != nil {
				logx.WithContext(r.Context()).Infow("session token rejected", logx.Field("err", err.Error()))
			} else {
				sessionId = id
			}
		}

		if sessionId == "" {
			sessionId = m.newId()
			signed, err := signSessionToken(m.secret, m.ttl, sessionId)
			if err != nil {
				logx.WithContext(r.Context()).Errorw("sign session token failed", logx.Field("err", err.Error()))
				httpx.ErrorCtx(r.Context(), w, errors.New(errno.InternalError, "issue session failed"))
				return
			}
			util.SetSessionCookie(w, signed)
		}

		util.InjectSessionId2Ctx(r, sessionId)
		next(w, r)
	}
}
