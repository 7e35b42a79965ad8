package biz

import "time"

type CtxKey string

const (
	SESSION_KEY CtxKey = "session_id"

	SESSIONCOOKIE = "stride_session"

	SessionCookieExpire = time.Hour * 24
)

const (
	MaxRecommendations = 3
	MaxSuggestions     = 3

	// SalePriceCap is the price ceiling behind the storefront "Sale" link.
	SalePriceCap = 100
)
