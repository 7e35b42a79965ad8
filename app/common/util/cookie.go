package util

import (
	"net/http"
	"time"

	"StrideAI/app/common/consts/biz"
)

// 封装 setcookie
func SetSessionCookie(w http.ResponseWriter, sessionId string) {
	if sessionId == "" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     biz.SESSIONCOOKIE,
		Value:    sessionId,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(biz.SessionCookieExpire),
		MaxAge:   int(biz.SessionCookieExpire.Seconds()),
	})
}
