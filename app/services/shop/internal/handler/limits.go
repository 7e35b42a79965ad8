package handler

import (
	"time"

	"StrideAI/app/services/shop/internal/config"
)

const (
	// base64 of an 8 MiB photo plus JSON framing
	maxImageBytes = 12 << 20

	routeTimeoutSlack = 5 * time.Second
)

// modelRouteTimeout outlasts the slowest reasoning call a route can make.
func modelRouteTimeout(c config.Config) time.Duration {
	longest := c.Session.ReplyTimeout
	for _, d := range []time.Duration{c.ChatModel.Timeout, c.Vision().Timeout} {
		if d > longest {
			longest = d
		}
	}
	return longest + routeTimeoutSlack
}
